// Package cli implements the eduingest command line interface.
// Commands are thin wrappers around the core services; all wiring
// happens once in Execute.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankr-labs/eduingest/internal/adapters/driven/config/file"
	"github.com/ankr-labs/eduingest/internal/adapters/driven/storage/sqlite"
	"github.com/ankr-labs/eduingest/internal/adapters/driven/textextract/pdf"
	"github.com/ankr-labs/eduingest/internal/adapters/driven/textextract/plaintext"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
	"github.com/ankr-labs/eduingest/internal/core/ports/driving"
	"github.com/ankr-labs/eduingest/internal/core/services"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Services used by the commands. Set during Execute; tests swap them.
var (
	version         = "dev"
	ingestor        driving.Ingestor
	settingsService *services.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "eduingest",
	Short: "Extract structure from educational documents and track them in a ledger",
	Long: `eduingest recovers chapters, worked examples, exercises and questions
from educational document text and registers each source file exactly
once in a durable content ledger.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the application and runs the root command.
func Execute(v string) error {
	version = v

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)
	settings := settingsService.Get()

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer store.Close()

	extractors := make(map[string]driven.PageTextExtractor)
	for _, ext := range settings.Extensions {
		switch ext {
		case ".pdf":
			extractors[ext] = pdf.NewExtractor()
		case ".txt":
			extractors[ext] = plaintext.NewExtractor()
		default:
			logger.Warn("no extractor for extension %s", ext)
		}
	}

	ingestor = services.NewIngestService(
		store.TextbookLedger(),
		store.PastPaperLedger(),
		extractors,
		settings.OutputDir,
	)

	return rootCmd.Execute()
}
