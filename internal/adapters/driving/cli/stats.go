package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger statistics",
	Long: `Prints row and question counts for both ledger tables, grouped by
board and class for textbooks and by level and subject code for past
papers. Use --json for machine-readable output.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if ingestor == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestor.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(headerStyle.Render("Textbooks"))
	printStatsTable(cmd, report.Textbooks)
	cmd.Println(headerStyle.Render("Past papers"))
	printStatsTable(cmd, report.PastPapers)
	cmd.Println(dimStyle.Render(fmt.Sprintf("%d rows total", report.TotalRows())))
	return nil
}

// printStatsTable renders one ledger table's groups in sorted order.
func printStatsTable(cmd *cobra.Command, stats map[string]domain.LedgerStats) {
	if len(stats) == 0 {
		cmd.Println(dimStyle.Render("  (empty)"))
		return
	}

	groups := make([]string, 0, len(stats))
	for group := range stats {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		s := stats[group]
		cmd.Printf("  %-30s %4d rows  %6d questions\n", group, s.Rows, s.PayloadSum)
	}
}
