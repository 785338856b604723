package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Emit chart-ready datasets as JSON",
	Long: `Build the weekly and monthly series, the win/loss split and the
entry-hour/exit-reason scatter, and write them to stdout as JSON for an
external charting frontend.`,
	Args: cobra.NoArgs,
	RunE: runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(book.Charts()); err != nil {
		return fmt.Errorf("encode charts: %w", err)
	}
	return nil
}
