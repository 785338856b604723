package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard summary",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	printSummary(os.Stdout, book.Summary(), book.RecentTrades(5))
	return nil
}

func printSummary(w io.Writer, s journal.Summary, recent []journal.Trade) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trading Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Total P/L:     %.2f\n", s.TotalPnL)
	fmt.Fprintf(w, "Trades:        %d\n", s.TotalCount)
	fmt.Fprintf(w, "Winners:       %d\n", s.WinningCount)
	fmt.Fprintf(w, "Win Rate:      %.1f%%\n", s.WinRate)
	fmt.Fprintf(w, "Avg P/L:       %.2f\n", s.AvgPnL)

	if len(recent) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, t := range recent {
		fmt.Fprintf(w, "%-12s %-12s %-5s %12.5f\n", t.Date, t.Asset, t.Type, t.Result)
	}
}
