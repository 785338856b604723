package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show performance breakdowns",
	Long: `Analyze the trade collection: best assets, best entry hours and the
losing-trade picture.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	w := os.Stdout

	fmt.Fprintln(w, "Best Assets")
	fmt.Fprintln(w, "--------------------------------------------------")
	best := book.BestAssets(5)
	if len(best) == 0 {
		fmt.Fprintln(w, "no data")
	}
	for _, g := range best {
		fmt.Fprintf(w, "%-15s %12.2f  (%d trades)\n", g.Key, g.Sum, g.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Best Entry Hours")
	fmt.Fprintln(w, "--------------------------------------------------")
	hours := book.BestHours(5)
	if len(hours) == 0 {
		fmt.Fprintln(w, "no data")
	}
	for _, g := range hours {
		fmt.Fprintf(w, "%02d:00           %12.2f  (%d trades)\n", g.Key, g.Sum, g.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Loss Analysis")
	fmt.Fprintln(w, "--------------------------------------------------")
	report, ok := book.Losses()
	if !ok {
		fmt.Fprintln(w, "no losing trades")
		return nil
	}
	fmt.Fprintf(w, "Losing Trades: %d\n", report.Count)
	fmt.Fprintf(w, "Average Loss:  %.2f\n", report.AvgLoss)
	if worst, ok := book.WorstAsset(); ok {
		fmt.Fprintf(w, "Worst Asset:   %s\n", worst)
	}
	return nil
}
