package queries

import (
	"context"
	"fmt"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/planning"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// CalculatePlanQuery evaluates one plan configuration against current
// game data and the caller's exchange preferences. CX may be nil to
// price everything at the universe average.
type CalculatePlanQuery struct {
	Plan *plan.Plan
	CX   *exchange.CXData
}

// CalculatePlanResponse carries the fully derived plan result.
type CalculatePlanResponse struct {
	Result *planning.Result
}

// CalculatePlanHandler loads a fresh snapshot per query and runs the
// calculator over it.
type CalculatePlanHandler struct {
	loader *gamedata.Loader
}

// NewCalculatePlanHandler creates a new plan calculation handler.
func NewCalculatePlanHandler(loader *gamedata.Loader) *CalculatePlanHandler {
	return &CalculatePlanHandler{loader: loader}
}

// Handle validates the plan, loads its snapshot and calculates.
func (h *CalculatePlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CalculatePlanQuery)
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

	return &CalculatePlanResponse{Result: result}, nil
}

// planBuildingTickers collects the production building tickers a plan
// places; infrastructure is always loaded.
func planBuildingTickers(p *plan.Plan) []string {
	tickers := make([]string, 0, len(p.Buildings))
	for _, instance := range p.Buildings {
		tickers = append(tickers, instance.Ticker)
	}
	return tickers
}
