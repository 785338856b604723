package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Record, list and delete journal notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new note",
	Args:  cobra.NoArgs,
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteDelete,
}

var (
	noteTitle    string
	noteCategory string
	noteContent  string
)

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)

	f := noteAddCmd.Flags()
	f.StringVar(&noteTitle, "title", "", "note title")
	f.StringVar(&noteCategory, "category", "general", "category: general, strategy, psychology, market or goals")
	f.StringVar(&noteContent, "content", "", "note body")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := book.AddNote(ctx, journal.Note{
		Title:    noteTitle,
		Category: journal.NoteCategory(noteCategory),
		Content:  noteContent,
	})
	if err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	fmt.Printf("recorded note %d: %s\n", n.ID, n.Title)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	notes := book.Notes()
	if len(notes) == 0 {
		fmt.Println("no notes")
		return nil
	}

	for i := len(notes) - 1; i >= 0; i-- {
		n := notes[i]
		fmt.Printf("%d [%s] %s\n  %s\n", n.ID, n.Category, n.Title, n.Content)
	}
	return nil
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("note id: %w", err)
	}

	book, _, cleanup, err := openBook(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := book.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
