package queries

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/application/roi"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// ScanROIQuery ranks every curated production layout on the template
// plan's planet under the caller's exchange preferences.
type ScanROIQuery struct {
	Template *plan.Plan
	CX       *exchange.CXData
}

// ScanROIResponse carries the ranked layout results.
type ScanROIResponse struct {
	Results []roi.Result
}

// ScanROIHandler loads the full building and recipe catalogue once and
// scans all layouts over it.
type ScanROIHandler struct {
	loader  *gamedata.Loader
	limiter *rate.Limiter
}

// NewScanROIHandler creates a new ROI scan handler. The limiter may be
// nil to scan at full speed.
func NewScanROIHandler(loader *gamedata.Loader, limiter *rate.Limiter) *ScanROIHandler {
	return &ScanROIHandler{loader: loader, limiter: limiter}
}

// Handle loads a full snapshot and evaluates every curated layout.
func (h *ScanROIHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ScanROIQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if err := query.Template.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	snapshot, err := h.loader.LoadAll(ctx, query.Template.PlanetID)
	if err != nil {
		return nil, fmt.Errorf("loading game data: %w", err)
	}

	resolver := pricing.NewResolver(snapshot, query.CX, query.Template.PlanetID, common.LoggerFromContext(ctx))
	scanner := roi.NewScanner(snapshot, resolver, h.limiter)

	results, err := scanner.Scan(ctx, query.Template)
	if err != nil {
		return nil, err
	}

	return &ScanROIResponse{Results: results}, nil
}
