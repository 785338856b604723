package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/logger"
	"github.com/rustyeddy/tradebook/store"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with performance analytics",
	Long: `Tradebook keeps a discretionary trader's records and derives the numbers
that matter from them.

It provides tools for:
  - Recording trades, notes and self reviews per user
  - Profit/loss, win-rate and average-P/L summaries
  - Best assets, best entry hours and loss analysis
  - Chart-ready weekly/monthly and scatter datasets
  - SQLite, Redis or in-memory persistence`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgFile  string
	userFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tradebook.yaml)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "journal owner (overrides config)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	if _, err := os.Stat("tradebook.yaml"); err == nil {
		return config.LoadFromFile("tradebook.yaml")
	}
	return config.Default(), nil
}

func openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.Store.Type {
	case "redis":
		return store.NewRedis(&redis.Options{
			Addr:     cfg.Store.Addr,
			Password: cfg.Store.Password,
			DB:       cfg.Store.DB,
		})
	case "memory":
		return store.NewMemory(), nil
	default:
		return store.NewSQLite(cfg.Store.Path)
	}
}

// openBook wires config, logger, store and journal together for one
// command invocation. The returned cleanup must be deferred.
func openBook(ctx context.Context) (*journal.Book, *store.Scoped, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	user := cfg.User
	if userFlag != "" {
		user = userFlag
	}

	zl := logger.New(cfg.Log.Level)

	kv, err := openKV(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	sc := store.NewScoped(kv, user, zl)
	book, err := journal.Open(ctx, sc, zl.Named("journal"))
	if err != nil {
		_ = kv.Close()
		return nil, nil, nil, fmt.Errorf("open journal: %w", err)
	}

	cleanup := func() {
		_ = kv.Close()
		_ = zl.Sync()
	}
	return book, sc, cleanup, nil
}
