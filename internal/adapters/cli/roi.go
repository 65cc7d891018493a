package cli

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	roiQuery "github.com/jplacht/prunplanner-go/internal/application/roi/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// NewROICommand creates the roi command with subcommands
func NewROICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Rank production buildings by return on investment",
		Long: `Evaluate every curated production layout on a planet and rank the
results by days to amortize.

Examples:
  prunplanner roi scan --planet OT-580b
  prunplanner roi scan --planet OT-580b --cx prefs.json --top 20`,
	}

	cmd.AddCommand(newROIScanCommand())

	return cmd
}

// newROIScanCommand creates the roi scan subcommand
func newROIScanCommand() *cobra.Command {
	var planetID string
	var top int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan all curated layouts on a planet",
		Long: `Scan every curated single-building layout against every recipe its
building can run, on the given planet and under the caller's exchange
preferences. Results are ranked by days to amortize, best first.

Examples:
  prunplanner roi scan --planet OT-580b
  prunplanner roi scan --planet OT-580b --top 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planetID == "" {
				return fmt.Errorf("--planet flag is required")
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

			template := &plan.Plan{PlanetID: planetID, Permits: 2}
			response, err := svc.mediator.Send(ctx, &roiQuery.ScanROIQuery{Template: template, CX: cx})
			if err != nil {
				return err
			}

			results := response.(*roiQuery.ScanROIResponse).Results
			sort.SliceStable(results, func(i, j int) bool {
				return rankROI(results[i].PlanROI) < rankROI(results[j].PlanROI)
			})
			if top > 0 && len(results) > top {
				results = results[:top]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BUILDING\tRECIPE\tDAILY PROFIT\tPLAN COST\tROI (DAYS)")
			for _, result := range results {
				roiText := "never"
				if !math.IsInf(result.PlanROI, 1) {
					roiText = fmt.Sprintf("%.1f", result.PlanROI)
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\n",
					result.BuildingTicker, result.RecipeID,
					result.DailyProfit, result.PlanCost, roiText)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&planetID, "planet", "", "Planet natural ID (required)")
	cmd.Flags().IntVar(&top, "top", 0, "Limit output to the best N results (0 = all)")

	return cmd
}

// rankROI orders amortization times: positive finite first, then
// everything that never amortizes.
func rankROI(roi float64) float64 {
	if roi <= 0 || math.IsInf(roi, 1) || math.IsNaN(roi) {
		return math.MaxFloat64
	}
	return roi
}
