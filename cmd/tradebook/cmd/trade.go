package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record, list and delete trades",
	Long: `Manage the trade collection.

Examples:
  tradebook trade add --date 2024-01-15 --asset EUR/USD --type buy \
      --lot 0.1 --entry-time 09:30 --exit-time 11:45 \
      --entry-price 1.0850 --exit-price 1.0875 --exit-reason TP
  tradebook trade list --asset EUR/USD --result profit
  tradebook trade delete 1705310400000`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, newest first, with optional filters",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a trade by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var (
	tradeDate        string
	tradeAsset       string
	tradeType        string
	tradeLot         float64
	tradeEntryTime   string
	tradeExitTime    string
	tradeEntryPrice  float64
	tradeExitPrice   float64
	tradeExitReason  string
	tradeEntryReason string
	tradeComment     string
	tradeEntryShot   string
	tradeExitShot    string

	filterAsset  string
	filterType   string
	filterResult string
	filterDate   string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	f := tradeAddCmd.Flags()
	f.StringVar(&tradeDate, "date", "", "trade date (YYYY-MM-DD)")
	f.StringVar(&tradeAsset, "asset", "", "asset or currency pair")
	f.StringVar(&tradeType, "type", "", "trade type: buy or sell")
	f.Float64Var(&tradeLot, "lot", 0, "lot/contract size")
	f.StringVar(&tradeEntryTime, "entry-time", "", "entry time (HH:MM)")
	f.StringVar(&tradeExitTime, "exit-time", "", "exit time (HH:MM)")
	f.Float64Var(&tradeEntryPrice, "entry-price", 0, "entry price")
	f.Float64Var(&tradeExitPrice, "exit-price", 0, "exit price")
	f.StringVar(&tradeExitReason, "exit-reason", "", "exit reason: SL, TP, PK, BE, manual or other")
	f.StringVar(&tradeEntryReason, "entry-reason", "", "why the trade was entered")
	f.StringVar(&tradeComment, "comment", "", "notes after closing")
	f.StringVar(&tradeEntryShot, "entry-shot", "", "entry screenshot filename")
	f.StringVar(&tradeExitShot, "exit-shot", "", "exit screenshot filename")

	lf := tradeListCmd.Flags()
	lf.StringVar(&filterAsset, "asset", "", "only this asset")
	lf.StringVar(&filterType, "type", "", "only this trade type")
	lf.StringVar(&filterResult, "result", "", "'profit' for winners, 'loss' for the rest")
	lf.StringVar(&filterDate, "date", "", "only this date (YYYY-MM-DD)")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := book.AddTrade(ctx, journal.Trade{
		Date:            tradeDate,
		Asset:           tradeAsset,
		Type:            journal.TradeType(tradeType),
		LotSize:         tradeLot,
		EntryTime:       tradeEntryTime,
		ExitTime:        tradeExitTime,
		EntryPrice:      tradeEntryPrice,
		ExitPrice:       tradeExitPrice,
		ExitReason:      journal.ExitReason(tradeExitReason),
		EntryReason:     tradeEntryReason,
		Comment:         tradeComment,
		EntryScreenshot: tradeEntryShot,
		ExitScreenshot:  tradeExitShot,
	})
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	fmt.Printf("recorded trade %d: %s %s, result %.5f\n", t.ID, t.Type, t.Asset, t.Result)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	trades := book.Filtered(journal.Filter{
		Asset:  filterAsset,
		Type:   journal.TradeType(filterType),
		Result: journal.ResultFilter(filterResult),
		Date:   filterDate,
	})

	if len(trades) == 0 {
		fmt.Println("no trades")
		return nil
	}

	fmt.Printf("%-15s %-12s %-12s %-5s %8s %12s %12s %-8s %12s\n",
		"ID", "DATE", "ASSET", "TYPE", "LOT", "ENTRY", "EXIT", "REASON", "RESULT")
	for _, t := range trades {
		fmt.Printf("%-15d %-12s %-12s %-5s %8.2f %12.5f %12.5f %-8s %12.5f\n",
			t.ID, t.Date, t.Asset, t.Type, t.LotSize, t.EntryPrice, t.ExitPrice, t.ExitReason, t.Result)
	}
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("trade id: %w", err)
	}

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := book.DeleteTrade(ctx, id); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}
