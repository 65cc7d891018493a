package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/habitation"
	"github.com/jplacht/prunplanner-go/internal/application/habitation/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
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

func TestOptimizeHabitationHandler(t *testing.T) {
	// Arrange
	handler := queries.NewOptimizeHabitationHandler(fixtureLoader(t))
	p := helpers.FixturePlan()

	// Act
	response, err := handler.Handle(context.Background(), &queries.OptimizeHabitationQuery{
		Plan: &p,
		Goal: habitation.GoalAuto,
	})

	// Assert
	require.NoError(t, err)
	resp := response.(*queries.OptimizeHabitationResponse)

	// Plan area 500, used 70, of which 20 is habitation handed back.
	assert.InDelta(t, 450.0, resp.AvailableArea, 1e-9)

	// 60 pioneers fit a single HB1, the cheapest option on this planet.
	require.True(t, resp.Solution.Feasible)
	assert.Equal(t, habitation.GoalCost, resp.Solution.Goal)
	assert.Equal(t, 1, resp.Solution.Counts[building.HB1])
	assert.InDelta(t, 2800.0, resp.Solution.Cost, 1e-6)
	assert.InDelta(t, 10.0, resp.Solution.Area, 1e-9)
}

func TestOptimizeHabitationHandler_AreaGoal(t *testing.T) {
	handler := queries.NewOptimizeHabitationHandler(fixtureLoader(t))
	p := helpers.FixturePlan()

	response, err := handler.Handle(context.Background(), &queries.OptimizeHabitationQuery{
		Plan: &p,
		Goal: habitation.GoalArea,
	})

	require.NoError(t, err)
	solution := response.(*queries.OptimizeHabitationResponse).Solution
	require.True(t, solution.Feasible)
	assert.Equal(t, habitation.GoalArea, solution.Goal)
	assert.InDelta(t, 10.0, solution.Objective, 1e-9)
}

func TestOptimizeHabitationHandler_InvalidPlan(t *testing.T) {
	handler := queries.NewOptimizeHabitationHandler(fixtureLoader(t))
	p := helpers.FixturePlan()
	p.PlanetID = ""

	_, err := handler.Handle(context.Background(), &queries.OptimizeHabitationQuery{
		Plan: &p,
		Goal: habitation.GoalAuto,
	})

	assert.Error(t, err)
}
