package cli

import (
	"context"
	"fmt"

	"github.com/hollandre/fitscan/internal/adapters/cli/tui"
	"github.com/spf13/cobra"
)

// NewLibraryCmd creates the library subcommand
func NewLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Browse saved exercises",
		RunE:  runLibraryList,
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an exercise by name",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraryRemove,
	}

	cmd.AddCommand(removeCmd)

	return cmd
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	exercises, err := app.LibrarySvc.List(ctx)
	if err != nil {
		return err
	}

	if len(exercises) == 0 {
		fmt.Println("Library is empty. Analyze a video with --save-library to add exercises.")
		return nil
	}

	fmt.Println()
	fmt.Printf("Exercise Library (%d):\n", len(exercises))
	for _, ex := range exercises {
		fmt.Println("  " + tui.FormatExerciseLine(ex, 28))
	}
	fmt.Println()

	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	removed, err := app.LibrarySvc.Remove(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d entries for %q\n", removed, args[0])
	return nil
}
