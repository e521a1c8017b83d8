package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <base-dir>",
	Short: "Extract and register textbook chapter files",
	Long: `Walks the base directory for textbook chapter files laid out as
<board>/class-<N>/<subject>/<book_code>/<file>, extracts their chapter,
example and question structure, and registers each new file in the
ledger. Files already registered are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestor == nil {
		return errors.New("ingest service not configured")
	}

	baseDir := args[0]
	cmd.Println(headerStyle.Render("Ingesting textbooks from " + baseDir))

	summary, err := ingestor.IngestTextbooks(cmd.Context(), baseDir)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	printSummary(cmd, summary)
	return nil
}

// printSummary renders one sweep's counters.
func printSummary(cmd *cobra.Command, summary domain.IngestSummary) {
	cmd.Printf("%s  %s  %s\n",
		successStyle.Render(fmt.Sprintf("%d registered", summary.Registered)),
		dimStyle.Render(fmt.Sprintf("%d skipped", summary.Skipped)),
		errorStyle.Render(fmt.Sprintf("%d failed", summary.Failed)))
}
