package gamedata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/planet"
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

func TestLoad_CoversPlanInfrastructureAndCore(t *testing.T) {
	loader := fixtureLoader(t)

	snapshot, err := loader.Load(context.Background(), helpers.FixturePlanetID, []string{"SME"})

	require.NoError(t, err)
	require.NotNil(t, snapshot.Planet)
	assert.Equal(t, helpers.FixturePlanetID, snapshot.Planet.NaturalID)

	// The requested building, every infrastructure type and the core
	// module are all resolvable.
	for _, ticker := range []string{"SME", "CM", "HB1", "HBL", "STO"} {
		_, err := snapshot.Building(ticker)
		assert.NoError(t, err, ticker)
	}

	// Unrequested production buildings are not.
	_, err = snapshot.Building("EXT")
	var notFound *building.ErrBuildingNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestLoad_UnknownPlanet(t *testing.T) {
	loader := fixtureLoader(t)

	_, err := loader.Load(context.Background(), "XX-000", nil)

	var notFound *planet.ErrPlanetNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestLoad_MaterialsAndQuotesInFull(t *testing.T) {
	loader := fixtureLoader(t)

	snapshot, err := loader.Load(context.Background(), helpers.FixturePlanetID, nil)
	require.NoError(t, err)

	m, err := snapshot.Material("SIO")
	require.NoError(t, err)
	assert.Equal(t, 1.7, m.Weight)

	q, err := snapshot.Quote(exchange.CompositeCode("SIO", exchange.UniverseAverageCode))
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.PriceAverage)

	_, err = snapshot.Quote("SIO.NC1")
	assert.ErrorIs(t, err, exchange.ErrQuoteNotFound)
}

func TestLoadAll_FullCatalogue(t *testing.T) {
	loader := fixtureLoader(t)

	snapshot, err := loader.LoadAll(context.Background(), helpers.FixturePlanetID)
	require.NoError(t, err)

	for _, ticker := range []string{"EXT", "SME", "CM", "HB1", "STO"} {
		_, err := snapshot.Building(ticker)
		assert.NoError(t, err, ticker)
	}

	recipes, err := snapshot.BuildingRecipes("SME")
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestBuildingRecipes_ExtractionSynthesis(t *testing.T) {
	loader := fixtureLoader(t)

	snapshot, err := loader.Load(context.Background(), helpers.FixturePlanetID, []string{"EXT"})
	require.NoError(t, err)

	recipes, err := snapshot.BuildingRecipes("EXT")
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	// 10 daily extraction x 0.7 mineral factor = 7 whole units per
	// cycle of exactly one day.
	recipe := recipes[0]
	assert.Equal(t, "EXT#SIO", recipe.RecipeID)
	assert.Empty(t, recipe.Inputs)
	require.Len(t, recipe.Outputs, 1)
	assert.Equal(t, building.RecipeMaterial{Ticker: "SIO", Amount: 7}, recipe.Outputs[0])
	assert.InDelta(t, building.MSPerDay, recipe.TimeMs, 1e-3)
}
