package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [tag]",
	Short: "Show or set the UI language tag",
	Long: `Without an argument, print the stored language tag for the active user.
With one, store it. The tag is opaque to tradebook; only a frontend
interprets it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, scoped, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		lang, err := scoped.Language(ctx)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		fmt.Println(lang)
		return nil
	}

	if err := scoped.SetLanguage(ctx, args[0]); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}
