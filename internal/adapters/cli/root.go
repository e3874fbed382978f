package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hollandre/fitscan/internal/adapters/cli/tui"
	"github.com/hollandre/fitscan/internal/adapters/hash"
	"github.com/hollandre/fitscan/internal/application"
	"github.com/hollandre/fitscan/internal/domain"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	variantFlag     string
	formatFlag      string
	outputFlag      string
	noCacheFlag     bool
	saveLibraryFlag bool
	quietFlag       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitscan [video-file...]",
		Short: "Extract exercises from workout videos",
		Long: `fitscan analyzes workout videos with a generative model and extracts
the exercises it finds: names, timestamps, muscle groups, and difficulty.

Provide one or more video files to analyze them, or run without
arguments for an interactive menu.`,
		RunE: runRoot,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "", "Analysis variant: fast, thorough")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text, json")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	rootCmd.PersistentFlags().BoolVar(&noCacheFlag, "no-cache", false, "Skip cache")
	rootCmd.PersistentFlags().BoolVar(&saveLibraryFlag, "save-library", false, "Save extracted exercises to the library")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	// Add subcommands
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewLibraryCmd())
	rootCmd.AddCommand(NewCacheCmd())

	return rootCmd
}

// NewAnalyzeCmd creates the explicit analyze subcommand; bare
// `fitscan video.mp4` does the same thing through the root command.
func NewAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <video-file...>",
		Short: "Analyze workout videos and extract exercises",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyzeAll(args)
		},
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// No arguments - show interactive menu
		return runInteractiveMenu()
	}
	return runAnalyzeAll(args)
}

// runAnalyzeAll processes videos one at a time. Each full
// analyze-then-cache cycle completes before the next begins, which keeps
// progress output readable and avoids concurrent uploads on one API key.
func runAnalyzeAll(paths []string) error {
	for i, path := range paths {
		if len(paths) > 1 && !quietFlag {
			fmt.Printf("\n=== %s (%d/%d) ===\n", filepath.Base(path), i+1, len(paths))
		}
		if err := runAnalyze(path); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func runInteractiveMenu() error {
	options := []tui.MenuOption{
		{Label: "Analyze a workout video", Value: "analyze"},
		{Label: "Generate a weekly plan", Value: "plan"},
		{Label: "Browse exercise library", Value: "library"},
		{Label: "Manage cache", Value: "cache"},
	}

	selected, err := tui.RunMenu("What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "analyze":
		fmt.Print("Enter video file path: ")
		var path string
		fmt.Scanln(&path)
		saveLibraryFlag = true
		return runAnalyze(path)
	case "plan":
		return runPlan(nil, nil)
	case "library":
		return runLibraryList(nil, nil)
	case "cache":
		return runCacheStatus(nil, nil)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}

func runAnalyze(path string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	mimeType, err := domain.MimeTypeForVideo(path)
	if err != nil {
		return err
	}

	video, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read video: %w", err)
	}

	variant := variantFlag
	if variant == "" {
		variant = app.Config.Defaults.Variant
	}
	if !domain.ValidVariant(variant) {
		return fmt.Errorf("unknown variant: %s (expected fast or thorough)", variant)
	}

	steps := []string{"Fingerprinting video", "Analyzing video", "Saving results"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	// Step 1: Fingerprint
	progress.StartStep(0)
	contentHash := ""
	if !noCacheFlag {
		contentHash, err = hash.ContentHash(path)
		if err != nil {
			progress.FailStep(0, err.Error())
			return fmt.Errorf("failed to fingerprint video: %w", err)
		}
		progress.CompleteStep(0, "")
	} else {
		progress.SkipStep(0, "cache disabled")
	}

	spinnerDone := progress.StartSpinner()

	// Step 2: Analyze
	progress.StartStep(1)

	ctx := context.Background()
	svc, err := app.AnalyzeService(ctx)
	if err != nil {
		close(spinnerDone)
		progress.FailStep(1, err.Error())
		return err
	}

	result, err := svc.Analyze(ctx, video, application.AnalyzeOptions{
		Variant:     variant,
		ContentHash: contentHash,
		MimeType:    mimeType,
		NoCache:     noCacheFlag,
	})
	if err != nil {
		close(spinnerDone)
		progress.FailStep(1, err.Error())
		return err
	}

	note := ""
	if result.FromCache {
		note = "cache hit"
	}
	progress.CompleteStep(1, note)

	// Step 3: Save
	progress.StartStep(2)
	close(spinnerDone)

	outputs := make(map[string]string)

	if saveLibraryFlag && len(result.Exercises) > 0 {
		exercises := result.Exercises
		if !quietFlag {
			selected, err := tui.RunExerciseSelector(exercises)
			if err != nil {
				return err
			}
			exercises = selected
		}
		added, skipped, err := app.LibrarySvc.SaveExtracted(ctx, filepath.Base(path), exercises)
		if err != nil {
			progress.FailStep(2, err.Error())
			return fmt.Errorf("failed to save to library: %w", err)
		}
		outputs["Library"] = fmt.Sprintf("%d added, %d already known", added, skipped)
	}

	progress.CompleteStep(2, "")

	if err := outputAnalysis(result); err != nil {
		return err
	}

	if outputFlag != "" {
		outputs["Results"] = outputFlag
	}
	if !quietFlag && len(outputs) > 0 {
		progress.Complete(outputs)
	}

	return nil
}

func outputAnalysis(result *application.AnalyzeResult) error {
	format := formatFlag
	if format == "" {
		format = "text"
	}

	var output string
	switch format {
	case "text":
		output = formatExercisesText(result.Exercises)
	case "json":
		jsonBytes, err := json.MarshalIndent(map[string]interface{}{
			"variant":   result.Variant,
			"fromCache": result.FromCache,
			"exercises": result.Exercises,
		}, "", "  ")
		if err != nil {
			return err
		}
		output = string(jsonBytes)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if outputFlag != "" {
		return os.WriteFile(outputFlag, []byte(output), 0644)
	}

	fmt.Println(output)
	return nil
}

func formatExercisesText(exercises []domain.Exercise) string {
	if len(exercises) == 0 {
		return "No exercises found in this video."
	}

	out := fmt.Sprintf("Found %d exercise(s):\n\n", len(exercises))
	for _, ex := range exercises {
		out += "  " + tui.FormatExerciseLine(ex, 28) + "\n"
		if ex.Description != "" {
			out += "      " + ex.Description + "\n"
		}
	}
	return out
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
