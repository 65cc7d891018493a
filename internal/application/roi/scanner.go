// Package roi ranks production buildings by return on investment. Every
// curated single-building layout is evaluated against every recipe its
// building can run, on the caller's planet and price preferences.
package roi

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/time/rate"

	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/planning"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// maxConcurrentScans bounds the number of plan evaluations in flight.
const maxConcurrentScans = 64

// Result is the outcome of evaluating one recipe in one curated layout.
type Result struct {
	BuildingTicker string
	Layout         planning.OptimalLayout
	RecipeID       string
	RecipeInputs   []building.RecipeMaterial
	RecipeOutputs  []building.RecipeMaterial
	COGC           building.COGCProgram
	COGM           *planning.COGM
	OutputProfit   float64
	DailyProfit    float64
	PlanCost       float64
	PlanROI        float64
}

// Scanner evaluates all curated layouts concurrently over a shared
// snapshot.
type Scanner struct {
	snapshot   *gamedata.Snapshot
	calculator *planning.Calculator
	limiter    *rate.Limiter
}

// NewScanner builds a scanner. The limiter may be nil to scan at full
// speed.
func NewScanner(snapshot *gamedata.Snapshot, prices *pricing.Resolver, limiter *rate.Limiter) *Scanner {
	return &Scanner{
		snapshot:   snapshot,
		calculator: planning.NewCalculator(snapshot, prices),
		limiter:    limiter,
	}
}

// Scan evaluates every recipe of every curated layout as a
// single-building plan derived from the template: full experts, the
// building's own expertise as COGC program and the layout's
// infrastructure. Results are ordered by building ticker, then recipe.
func (s *Scanner) Scan(ctx context.Context, template *plan.Plan) ([]Result, error) {
	layouts := make([]planning.OptimalLayout, 0, len(planning.OptimalLayouts))
	for _, layout := range planning.OptimalLayouts {
		layouts = append(layouts, layout)
	}
	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Ticker < layouts[j].Ticker })

	var (
		mu       sync.Mutex
		results  []Result
		firstErr error
		wg       sync.WaitGroup
	)
	semaphore := make(chan struct{}, maxConcurrentScans)

	for _, layout := range layouts {
		wg.Add(1)
		go func(layout planning.OptimalLayout) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			layoutResults, err := s.scanLayout(ctx, template, layout)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results = append(results, layoutResults...)
		}(layout)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].BuildingTicker != results[j].BuildingTicker {
			return results[i].BuildingTicker < results[j].BuildingTicker
		}
		return results[i].RecipeID < results[j].RecipeID
	})

	return results, nil
}

// scanLayout evaluates all recipes of one layout's building. Layouts
// whose building is absent from the catalogue are skipped so a partial
// data import still yields results.
func (s *Scanner) scanLayout(ctx context.Context, template *plan.Plan, layout planning.OptimalLayout) ([]Result, error) {
	b, err := s.snapshot.Building(layout.Ticker)
	if err != nil {
		var notFound *building.ErrBuildingNotFound
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	recipes, err := s.snapshot.BuildingRecipes(layout.Ticker)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(recipes))

	for _, recipe := range recipes {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		candidate := layoutPlan(template, layout, b, recipe.RecipeID)
		calculation, err := s.calculator.Calculate(candidate)
		if err != nil {
			return nil, err
		}

		result := Result{
			BuildingTicker: layout.Ticker,
			Layout:         layout,
			RecipeID:       recipe.RecipeID,
			RecipeInputs:   recipe.Inputs,
			RecipeOutputs:  recipe.Outputs,
			COGC:           candidate.COGC,
			DailyProfit:    calculation.Overview.Profit,
			PlanCost:       calculation.Overview.TotalConstructionCost,
			PlanROI:        calculation.Overview.ROI,
		}
		if len(calculation.Production.Buildings) > 0 && len(calculation.Production.Buildings[0].ActiveRecipes) > 0 {
			cogm := calculation.Production.Buildings[0].ActiveRecipes[0].COGM
			result.COGM = cogm
			if cogm != nil {
				result.OutputProfit = cogm.TotalProfit
			}
		}
		results = append(results, result)
	}

	return results, nil
}

// layoutPlan derives a fresh single-building candidate plan from the
// template. The template is never modified; every candidate gets its
// own slices.
func layoutPlan(template *plan.Plan, layout planning.OptimalLayout, b *building.Building, recipeID string) *plan.Plan {
	candidate := *template

	candidate.COGC = building.COGCProgram(b.Expertise)

	candidate.Experts = make([]plan.ExpertAllocation, 0, len(building.AllExpertise))
	for _, e := range building.AllExpertise {
		candidate.Experts = append(candidate.Experts, plan.ExpertAllocation{
			Type:   e,
			Amount: building.MaxExpertsPerCategory,
		})
	}

	candidate.Buildings = []plan.BuildingInstance{{
		Ticker: layout.Ticker,
		Amount: layout.Amount,
		ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: recipeID, Amount: 1},
		},
	}}

	candidate.Infrastructure = make([]plan.InfrastructureInstance, 0, len(building.AllInfrastructure))
	for _, t := range building.AllInfrastructure {
		candidate.Infrastructure = append(candidate.Infrastructure, plan.InfrastructureInstance{
			Type:   t,
			Amount: layout.Infrastructure[t],
		})
	}

	candidate.Workforce = append([]plan.WorkforceLuxury(nil), template.Workforce...)

	return &candidate
}
