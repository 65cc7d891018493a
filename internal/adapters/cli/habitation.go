package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/application/habitation"
	habitationQuery "github.com/jplacht/prunplanner-go/internal/application/habitation/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
)

// NewHabitationCommand creates the habitation command with subcommands
func NewHabitationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habitation",
		Short: "Optimize habitation layouts",
		Long: `Find the best habitation mix for a plan's workforce.

Examples:
  prunplanner habitation optimize --plan base.json --goal auto
  prunplanner habitation optimize --plan base.json --goal area`,
	}

	cmd.AddCommand(newHabitationOptimizeCommand())

	return cmd
}

// newHabitationOptimizeCommand creates the habitation optimize
// subcommand
func newHabitationOptimizeCommand() *cobra.Command {
	var planPath string
	var goal string

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the best habitation mix for a plan",
		Long: `Find the habitation mix housing a plan's workforce. Goal "cost"
minimizes construction cost within the available area, "area" minimizes
footprint, "auto" tries cost first and falls back to area when the
workforce cannot be housed within the plan's free area.

Examples:
  prunplanner habitation optimize --plan base.json
  prunplanner habitation optimize --plan base.json --goal cost`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planPath == "" {
				return fmt.Errorf("--plan flag is required")
			}
			habGoal := habitation.Goal(goal)
			if habGoal != habitation.GoalAuto && habGoal != habitation.GoalCost && habGoal != habitation.GoalArea {
				return fmt.Errorf("invalid --goal %q: must be auto, cost or area", goal)
			}

			p, err := loadPlan(planPath)
			if err != nil {
				return err
			}
			cx, err := loadCX()
			if err != nil {
				return err
			}

			svc, err := openServices()
			if err != nil {
				return err
			}

			ctx := common.WithLogger(cmdContext(), svc.logger)
			response, err := svc.mediator.Send(ctx, &habitationQuery.OptimizeHabitationQuery{
				Plan: p,
				CX:   cx,
				Goal: habGoal,
			})
			if err != nil {
				return err
			}

			result := response.(*habitationQuery.OptimizeHabitationResponse)
			if !result.Solution.Feasible {
				return fmt.Errorf("no habitation mix can house this workforce")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Goal\t%s\n", result.Solution.Goal)
			fmt.Fprintf(w, "Available area\t%.0f\n", result.AvailableArea)
			fmt.Fprintf(w, "Solution area\t%.0f\n", result.Solution.Area)
			fmt.Fprintf(w, "Solution cost\t%.2f\n", result.Solution.Cost)
			fmt.Fprintln(w)
			for _, habType := range building.HabitationTypes {
				if count := result.Solution.Counts[habType]; count > 0 {
					fmt.Fprintf(w, "%s\t%d\n", habType, count)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Path to plan JSON file (required)")
	cmd.Flags().StringVar(&goal, "goal", "auto", "Optimization goal: auto, cost or area")

	return cmd
}
