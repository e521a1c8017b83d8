package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <base-dir>",
	Short: "Register collected past paper files",
	Long: `Walks the base directory for past paper files laid out as
<level>/<subject_code>/<year>/<file> and registers each new file in the
ledger. PDFs are recorded as downloaded, other files as collected. No
structural extraction is performed.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if ingestor == nil {
		return errors.New("ingest service not configured")
	}

	baseDir := args[0]
	cmd.Println(headerStyle.Render("Scanning past papers in " + baseDir))

	summary, err := ingestor.ScanPastPapers(cmd.Context(), baseDir)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printSummary(cmd, summary)
	return nil
}
