package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// extractionArtifact is the JSON side artifact written next to each
// ingested file's ledger row.
type extractionArtifact struct {
	RunID       string                  `json:"run_id"`
	ExtractedAt time.Time               `json:"extracted_at"`
	Result      domain.ExtractionResult `json:"result"`
}

// writeArtifact serialises the extraction result to
// <outputDir>/<source base name>.json.
func writeArtifact(outputDir string, result domain.ExtractionResult) error {
	if err := os.MkdirAll(outputDir, 0700); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	artifact := extractionArtifact{
		RunID:       uuid.NewString(),
		ExtractedAt: time.Now().UTC(),
		Result:      result,
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling artifact: %w", err)
	}

	base := strings.TrimSuffix(result.SourceFilename, filepath.Ext(result.SourceFilename))
	path := filepath.Join(outputDir, base+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing artifact: %w", err)
	}
	return nil
}
