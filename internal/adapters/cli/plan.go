package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hollandre/fitscan/internal/application"
	"github.com/hollandre/fitscan/internal/domain"
	"github.com/spf13/cobra"
)

var (
	planDaysFlag  int
	planFocusFlag string
)

// NewPlanCmd creates the plan subcommand
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a weekly workout plan from your exercise library",
		RunE:  runPlan,
	}

	cmd.Flags().IntVar(&planDaysFlag, "days-per-week", 3, "Number of training days per week (1-7)")
	cmd.Flags().StringVar(&planFocusFlag, "focus", "", "Emphasis for the plan (e.g., strength, mobility)")

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	variant := variantFlag
	if variant == "" {
		variant = app.Config.Defaults.Variant
	}
	if !domain.ValidVariant(variant) {
		return fmt.Errorf("unknown variant: %s (expected fast or thorough)", variant)
	}

	ctx := context.Background()
	svc, err := app.PlanService(ctx)
	if err != nil {
		return err
	}

	if !quietFlag {
		fmt.Println("Generating plan...")
	}

	plan, err := svc.Generate(ctx, application.PlanOptions{
		DaysPerWeek: planDaysFlag,
		Focus:       planFocusFlag,
		Variant:     variant,
	})
	if err != nil {
		return err
	}

	return outputPlan(plan)
}

func outputPlan(plan *domain.WorkoutPlan) error {
	format := formatFlag
	if format == "" {
		format = "text"
	}

	var output string
	switch format {
	case "text":
		output = plan.ToText()
	case "json":
		jsonBytes, err := json.MarshalIndent(plan, "", "  ")
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
