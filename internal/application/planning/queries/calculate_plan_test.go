package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/planning/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/test/helpers"
)

func fixtureLoader(t *testing.T) *gamedata.Loader {
	t.Helper()

	db := helpers.NewTestDB(t)
	helpers.SeedGameData(t, db)

	return gamedata.NewLoader(
		persistence.NewBuildingRepository(db),
		persistence.NewRecipeRepository(db),
		persistence.NewMaterialRepository(db),
		persistence.NewExchangeRepository(db),
		persistence.NewPlanetRepository(db),
	)
}

func TestCalculatePlanHandler(t *testing.T) {
	// Arrange
	handler := queries.NewCalculatePlanHandler(fixtureLoader(t))
	p := helpers.FixturePlan()

	// Act
	response, err := handler.Handle(context.Background(), &queries.CalculatePlanQuery{Plan: &p})

	// Assert
	require.NoError(t, err)
	result := response.(*queries.CalculatePlanResponse).Result
	require.NotNil(t, result)
	assert.InDelta(t, 700.0, result.Revenue, 1e-6)
	assert.InDelta(t, 500.0, result.Area.AreaTotal, 1e-9)
}

func TestCalculatePlanHandler_PreferencesChangePricing(t *testing.T) {
	handler := queries.NewCalculatePlanHandler(fixtureLoader(t))
	p := helpers.FixturePlan()
	cx := &exchange.CXData{
		TickerEmpire: []exchange.TickerPreference{
			{Ticker: "SIO", Type: exchange.Sell, Value: 200},
		},
	}

	response, err := handler.Handle(context.Background(), &queries.CalculatePlanQuery{Plan: &p, CX: cx})

	require.NoError(t, err)
	result := response.(*queries.CalculatePlanResponse).Result
	assert.InDelta(t, 1400.0, result.Revenue, 1e-6)
}

func TestCalculatePlanHandler_InvalidPlan(t *testing.T) {
	handler := queries.NewCalculatePlanHandler(fixtureLoader(t))
	p := helpers.FixturePlan()
	p.PlanetID = ""

	_, err := handler.Handle(context.Background(), &queries.CalculatePlanQuery{Plan: &p})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan")
}

func TestCalculatePlanHandler_WrongRequestType(t *testing.T) {
	handler := queries.NewCalculatePlanHandler(fixtureLoader(t))

	_, err := handler.Handle(context.Background(), &plan.Plan{})

	assert.Error(t, err)
}
