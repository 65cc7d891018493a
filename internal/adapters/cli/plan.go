package cli

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	planningQuery "github.com/jplacht/prunplanner-go/internal/application/planning/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// NewPlanCommand creates the plan command with subcommands
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Evaluate base plans",
		Long: `Evaluate a base plan definition against current game data.

Examples:
  prunplanner plan calculate --plan base.json --cx prefs.json
  prunplanner plan overview --plan base.json`,
	}

	cmd.AddCommand(newPlanCalculateCommand())
	cmd.AddCommand(newPlanOverviewCommand())

	return cmd
}

// runPlanCalculation wires services and dispatches the calculation
// query for one plan file.
func runPlanCalculation(planPath string) (*planningQuery.CalculatePlanResponse, error) {
	p, err := loadPlan(planPath)
	if err != nil {
		return nil, err
	}
	cx, err := loadCX()
	if err != nil {
		return nil, err
	}

	svc, err := openServices()
	if err != nil {
		return nil, err
	}

	ctx := common.WithLogger(cmdContext(), svc.logger)
	response, err := svc.mediator.Send(ctx, &planningQuery.CalculatePlanQuery{Plan: p, CX: cx})
	if err != nil {
		return nil, err
	}

	return response.(*planningQuery.CalculatePlanResponse), nil
}

// newPlanCalculateCommand creates the plan calculate subcommand
func newPlanCalculateCommand() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a full plan result",
		Long: `Calculate the complete derived state of a plan: workforce
satisfaction, building efficiencies, daily material flows, COGM per
recipe, area usage and financial summary.

Examples:
  prunplanner plan calculate --plan base.json
  prunplanner plan calculate --plan base.json --cx prefs.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planPath == "" {
				return fmt.Errorf("--plan flag is required")
			}

			response, err := runPlanCalculation(planPath)
			if err != nil {
				return err
			}
			result := response.Result

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

			fmt.Fprintf(w, "Area\t%.0f / %.0f (%d permits)\n",
				result.Area.AreaUsed, result.Area.AreaTotal, result.Area.Permits)
			fmt.Fprintf(w, "Revenue\t%.2f/d\n", result.Revenue)
			fmt.Fprintf(w, "Cost\t%.2f/d\n", result.Cost)
			fmt.Fprintf(w, "Profit\t%.2f/d\n", result.Profit)
			fmt.Fprintln(w)

			fmt.Fprintln(w, "WORKFORCE\tREQUIRED\tCAPACITY\tEFFICIENCY")
			for _, t := range workforce.AllTypes {
				e := result.Workforce[t]
				if e.Required == 0 && e.Capacity == 0 {
					continue
				}
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.1f%%\n",
					e.Type, e.Required, e.Capacity, e.Efficiency*100)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "BUILDING\tCOUNT\tEFFICIENCY\tDAILY REVENUE")
			for _, b := range result.Production.Buildings {
				fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.2f\n",
					b.Ticker, b.Amount, b.TotalEfficiency*100, b.DailyRevenue)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "MATERIAL\tDELTA/d\tVALUE/d")
			for _, flow := range result.MaterialIO {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", flow.Ticker, flow.Delta, flow.Price)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Path to plan JSON file (required)")

	return cmd
}

// newPlanOverviewCommand creates the plan overview subcommand
func newPlanOverviewCommand() *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show a plan's headline figures",
		Long: `Show the condensed financials of a plan: daily cost and profit,
total construction cost, degradation and days to amortize.

Examples:
  prunplanner plan overview --plan base.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planPath == "" {
				return fmt.Errorf("--plan flag is required")
			}

			response, err := runPlanCalculation(planPath)
			if err != nil {
				return err
			}
			overview := response.Result.Overview

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Daily revenue\t%.2f\n", overview.DailyProfit)
			fmt.Fprintf(w, "Daily cost\t%.2f\n", overview.DailyCost)
			fmt.Fprintf(w, "Daily degradation\t%.2f\n", overview.DailyDegradationCost)
			fmt.Fprintf(w, "Daily profit\t%.2f\n", overview.Profit)
			fmt.Fprintf(w, "Construction cost\t%.2f\n", overview.TotalConstructionCost)
			if math.IsInf(overview.ROI, 1) {
				fmt.Fprintf(w, "ROI\tnever\n")
			} else {
				fmt.Fprintf(w, "ROI\t%.1f days\n", overview.ROI)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			bills := response.Result.ConstructionBills
			sort.Slice(bills, func(i, j int) bool { return bills[i].Ticker < bills[j].Ticker })
			fmt.Println()
			for _, bill := range bills {
				fmt.Printf("%dx %s\n", bill.Amount, bill.Ticker)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Path to plan JSON file (required)")

	return cmd
}
