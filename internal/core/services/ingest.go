package services

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ankr-labs/eduingest/internal/classifier"
	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
	"github.com/ankr-labs/eduingest/internal/core/ports/driving"
	"github.com/ankr-labs/eduingest/internal/extractor"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService coordinates structural extraction and ledger
// registration. Files are processed sequentially; a failure on one file
// never aborts the sweep.
type IngestService struct {
	textbooks  driven.TextbookLedger
	pastPapers driven.PastPaperLedger
	extractors map[string]driven.PageTextExtractor
	outputDir  string
}

// NewIngestService creates a new ingest service. The extractors map is
// keyed by lowercase file extension (".pdf", ".txt"); files with other
// extensions are ignored during textbook ingestion. If outputDir is
// empty, no extraction artifacts are written.
func NewIngestService(
	textbooks driven.TextbookLedger,
	pastPapers driven.PastPaperLedger,
	extractors map[string]driven.PageTextExtractor,
	outputDir string,
) *IngestService {
	return &IngestService{
		textbooks:  textbooks,
		pastPapers: pastPapers,
		extractors: extractors,
		outputDir:  outputDir,
	}
}

// IngestTextbooks walks baseDir for textbook chapter files, extracts
// their structure, classifies the recovered questions and registers
// each new file in the ledger.
func (s *IngestService) IngestTextbooks(ctx context.Context, baseDir string) (domain.IngestSummary, error) {
	var summary domain.IngestSummary

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		pageExtractor, ok := s.extractors[ext]
		if !ok {
			return nil
		}

		key, kerr := ParseTextbookPath(baseDir, path)
		if kerr != nil {
			logger.Debug("skipping %s: %v", path, kerr)
			return nil
		}

		registered, rerr := s.textbooks.IsRegistered(ctx, key)
		if rerr != nil {
			logger.Error("checking %s: %v", key, rerr)
			summary.Failed++
			return nil
		}
		if registered {
			logger.Debug("already registered: %s", key)
			summary.Skipped++
			return nil
		}

		if s.ingestOne(ctx, pageExtractor, key, path) {
			summary.Registered++
		} else {
			summary.Failed++
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Info("textbook sweep: %d registered, %d skipped, %d failed",
		summary.Registered, summary.Skipped, summary.Failed)
	return summary, nil
}

// ingestOne extracts, classifies and registers a single textbook file.
func (s *IngestService) ingestOne(
	ctx context.Context,
	pageExtractor driven.PageTextExtractor,
	key domain.TextbookKey,
	path string,
) bool {
	pages, err := pageExtractor.Pages(ctx, path)
	if err != nil {
		logger.Error("extracting %s: %v", path, err)
		return false
	}

	result := extractor.Extract(domain.RawDocument{SourceName: path, Pages: pages})
	classifyQuestions(&result)

	if s.outputDir != "" {
		if err := writeArtifact(s.outputDir, result); err != nil {
			logger.Warn("writing artifact for %s: %v", key, err)
		}
	}

	return s.textbooks.Register(ctx, key, path, domain.StatusCompleted, result.Totals.QuestionCount)
}

// ScanPastPapers walks baseDir for past paper files and registers each
// new file in the ledger. No structural extraction is performed; PDFs
// are recorded as downloaded, other files as collected.
func (s *IngestService) ScanPastPapers(ctx context.Context, baseDir string) (domain.IngestSummary, error) {
	var summary domain.IngestSummary

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}

		key, kerr := ParsePastPaperPath(baseDir, path)
		if kerr != nil {
			logger.Debug("skipping %s: %v", path, kerr)
			return nil
		}

		registered, rerr := s.pastPapers.IsRegistered(ctx, key)
		if rerr != nil {
			logger.Error("checking %s: %v", key, rerr)
			summary.Failed++
			return nil
		}
		if registered {
			summary.Skipped++
			return nil
		}

		status := domain.StatusCollected
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			status = domain.StatusDownloaded
		}

		if s.pastPapers.Register(ctx, key, path, status, 0) {
			summary.Registered++
		} else {
			summary.Failed++
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Info("past paper sweep: %d registered, %d skipped, %d failed",
		summary.Registered, summary.Skipped, summary.Failed)
	return summary, nil
}

// Stats returns ledger statistics for both record families.
func (s *IngestService) Stats(ctx context.Context) (domain.StatsReport, error) {
	textbooks, err := s.textbooks.Stats(ctx)
	if err != nil {
		return domain.StatsReport{}, err
	}

	pastPapers, err := s.pastPapers.Stats(ctx)
	if err != nil {
		return domain.StatsReport{}, err
	}

	return domain.StatsReport{
		Textbooks:  textbooks,
		PastPapers: pastPapers,
	}, nil
}

// classifyQuestions assigns difficulty and tags to every question unit
// in the extraction result.
func classifyQuestions(result *domain.ExtractionResult) {
	for ci := range result.Chapters {
		for ei := range result.Chapters[ci].Exercises {
			questions := result.Chapters[ci].Exercises[ei].Questions
			for qi := range questions {
				questions[qi].Difficulty, questions[qi].Tags = classifier.Classify(questions[qi].Text)
			}
		}
	}
}
