package queries

import (
	"context"
	"fmt"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/habitation"
	"github.com/jplacht/prunplanner-go/internal/application/planning"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// OptimizeHabitationQuery finds the best habitation mix for a plan's
// workforce demand, using the plan's planet for infrastructure pricing.
type OptimizeHabitationQuery struct {
	Plan *plan.Plan
	CX   *exchange.CXData
	Goal habitation.Goal
}

// OptimizeHabitationResponse carries the optimizer solution together
// with the area that was available to it.
type OptimizeHabitationResponse struct {
	Solution      habitation.Solution
	AvailableArea float64
}

// OptimizeHabitationHandler evaluates the plan first, then optimizes
// over its derived workforce demand and infrastructure costs.
type OptimizeHabitationHandler struct {
	loader *gamedata.Loader
}

// NewOptimizeHabitationHandler creates a new habitation optimizer
// handler.
func NewOptimizeHabitationHandler(loader *gamedata.Loader) *OptimizeHabitationHandler {
	return &OptimizeHabitationHandler{loader: loader}
}

// Handle runs the plan calculation and feeds its workforce demand,
// infrastructure costs and free area into the solver.
func (h *OptimizeHabitationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*OptimizeHabitationQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := query.Plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	snapshot, err := h.loader.Load(ctx, query.Plan.PlanetID, planBuildingTickers(query.Plan))
	if err != nil {
		return nil, fmt.Errorf("loading game data: %w", err)
	}

	resolver := pricing.NewResolver(snapshot, query.CX, query.Plan.PlanetID, common.LoggerFromContext(ctx))
	result, err := planning.NewCalculator(snapshot, resolver).Calculate(query.Plan)
	if err != nil {
		return nil, err
	}

	infrastructure := make(map[building.InfrastructureType]int, len(result.Infrastructure))
	for habType, count := range result.Infrastructure {
		infrastructure[habType] = count
	}
	availableArea := habitation.CalculateAvailableArea(result.Area.AreaTotal, result.Area.AreaUsed, infrastructure)

	costs := make(habitation.Costs, len(result.InfrastructureCosts))
	for habType, cost := range result.InfrastructureCosts {
		costs[habType] = cost
	}

	solution := habitation.Optimize(query.Goal, costs, result.Workforce, availableArea, true)

	return &OptimizeHabitationResponse{
		Solution:      solution,
		AvailableArea: availableArea,
	}, nil
}

func planBuildingTickers(p *plan.Plan) []string {
	tickers := make([]string, 0, len(p.Buildings))
	for _, instance := range p.Buildings {
		tickers = append(tickers, instance.Ticker)
	}
	return tickers
}
