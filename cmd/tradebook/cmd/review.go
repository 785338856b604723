package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Record, list and delete self reviews",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a self review",
	Args:  cobra.NoArgs,
	RunE:  runReviewAdd,
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, newest first",
	Args:  cobra.NoArgs,
	RunE:  runReviewList,
}

var reviewDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a review by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewDelete,
}

var (
	reviewDiscipline   int
	reviewPlan         int
	reviewRisk         int
	reviewAchievements string
	reviewMistakes     string
	reviewImprovements string
)

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewDeleteCmd)

	f := reviewAddCmd.Flags()
	f.IntVar(&reviewDiscipline, "discipline", 5, "discipline rating, 0-10")
	f.IntVar(&reviewPlan, "plan", 5, "plan-adherence rating, 0-10")
	f.IntVar(&reviewRisk, "risk", 5, "risk-management rating, 0-10")
	f.StringVar(&reviewAchievements, "achievements", "", "what went well")
	f.StringVar(&reviewMistakes, "mistakes", "", "what went wrong")
	f.StringVar(&reviewImprovements, "improvements", "", "what to change")
}

func runReviewAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := book.AddReview(ctx, journal.Review{
		Discipline:   reviewDiscipline,
		Plan:         reviewPlan,
		Risk:         reviewRisk,
		Achievements: reviewAchievements,
		Mistakes:     reviewMistakes,
		Improvements: reviewImprovements,
	})
	if err != nil {
		return fmt.Errorf("add review: %w", err)
	}

	fmt.Printf("recorded review %d\n", r.ID)
	return nil
}

func runReviewList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	reviews := book.Reviews()
	if len(reviews) == 0 {
		fmt.Println("no reviews")
		return nil
	}

	for i := len(reviews) - 1; i >= 0; i-- {
		r := reviews[i]
		fmt.Printf("%d  discipline %d/10, plan %d/10, risk %d/10\n", r.ID, r.Discipline, r.Plan, r.Risk)
		if r.Achievements != "" {
			fmt.Printf("  achievements: %s\n", r.Achievements)
		}
		if r.Mistakes != "" {
			fmt.Printf("  mistakes:     %s\n", r.Mistakes)
		}
		if r.Improvements != "" {
			fmt.Printf("  improvements: %s\n", r.Improvements)
		}
	}
	return nil
}

func runReviewDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("review id: %w", err)
	}

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := book.DeleteReview(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
