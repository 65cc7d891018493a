package roi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/application/roi"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/test/helpers"
)

func fixtureScanner(t *testing.T, limiter *rate.Limiter) (*roi.Scanner, *plan.Plan) {
	t.Helper()

	db := helpers.NewTestDB(t)
	helpers.SeedGameData(t, db)

	loader := gamedata.NewLoader(
		persistence.NewBuildingRepository(db),
		persistence.NewRecipeRepository(db),
		persistence.NewMaterialRepository(db),
		persistence.NewExchangeRepository(db),
		persistence.NewPlanetRepository(db),
	)

	snapshot, err := loader.LoadAll(context.Background(), helpers.FixturePlanetID)
	require.NoError(t, err)

	resolver := pricing.NewResolver(snapshot, nil, helpers.FixturePlanetID, nil)
	template := &plan.Plan{PlanetID: helpers.FixturePlanetID, Permits: 2}

	return roi.NewScanner(snapshot, resolver, limiter), template
}

func TestScan_SkipsLayoutsWithoutCatalogueBuilding(t *testing.T) {
	// Arrange: the fixture catalogue only carries SME of the curated
	// layouts, so every other layout must be skipped silently.
	scanner, template := fixtureScanner(t, nil)

	// Act
	results, err := scanner.Scan(context.Background(), template)

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "SME", results[0].BuildingTicker)
	assert.Equal(t, "SME#4xSIO=>1xSI", results[0].RecipeID)
}

func TestScan_CandidatePlanSetup(t *testing.T) {
	scanner, template := fixtureScanner(t, nil)

	results, err := scanner.Scan(context.Background(), template)

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]

	// The candidate runs under the building's own expertise program
	// with full experts, so the scan reports each building at its best.
	assert.Equal(t, building.COGCProgram(building.Metallurgy), result.COGC)
	require.NotNil(t, result.COGM)
	assert.InDelta(t, (1+0.2840)*1.25, result.COGM.Efficiency, 1e-6)

	assert.Equal(t, 16, result.Layout.Amount)
	require.Len(t, result.RecipeInputs, 1)
	assert.Equal(t, "SIO", result.RecipeInputs[0].Ticker)
	require.Len(t, result.RecipeOutputs, 1)
	assert.Equal(t, "SI", result.RecipeOutputs[0].Ticker)

	assert.Greater(t, result.PlanCost, 0.0)
	assert.InDelta(t, result.COGM.TotalProfit, result.OutputProfit, 1e-9)
}

func TestScan_WithRateLimiter(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1000), 10)
	scanner, template := fixtureScanner(t, limiter)

	results, err := scanner.Scan(context.Background(), template)

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestScan_CancelledContext(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	scanner, template := fixtureScanner(t, limiter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scanner.Scan(ctx, template)

	assert.Error(t, err)
}
