package fio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/fio"
	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/test/helpers"
)

const buildingExport = `[
  {
    "Ticker": "EXT", "Name": "extractor", "Type": "PRODUCTION",
    "Expertise": "RESOURCE_EXTRACTION", "AreaCost": 25, "Pioneers": 60,
    "BuildingCosts": [
      {"CommodityTicker": "BSE", "Amount": 16}
    ]
  },
  {
    "Ticker": "HB1", "Name": "habitationPioneer", "Type": "INFRASTRUCTURE",
    "AreaCost": 10,
    "Habitation": {"Pioneers": 100},
    "BuildingCosts": [
      {"CommodityTicker": "BSE", "Amount": 6}
    ]
  }
]`

func TestImportBuildings(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	// Act
	count, err := importer.ImportBuildings(context.Background(), strings.NewReader(buildingExport))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	repo := persistence.NewBuildingRepository(db)
	ext, err := repo.FindByTicker(context.Background(), "EXT")
	require.NoError(t, err)
	assert.Equal(t, building.ResourceExtraction, ext.Expertise)
	assert.Equal(t, 60.0, ext.Pioneers)
	require.Len(t, ext.Costs, 1)
	assert.Equal(t, 16.0, ext.Costs[0].Amount)

	hb1, err := repo.FindByTicker(context.Background(), "HB1")
	require.NoError(t, err)
	require.NotNil(t, hb1.Habitation)
	assert.Equal(t, 100.0, hb1.Habitation.Pioneer)
}

func TestImportBuildings_UpsertReplacesCosts(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	_, err := importer.ImportBuildings(context.Background(), strings.NewReader(buildingExport))
	require.NoError(t, err)

	updated := `[
      {
        "Ticker": "EXT", "Name": "extractor", "Type": "PRODUCTION",
        "Expertise": "RESOURCE_EXTRACTION", "AreaCost": 25, "Pioneers": 60,
        "BuildingCosts": [
          {"CommodityTicker": "BSE", "Amount": 12},
          {"CommodityTicker": "TRU", "Amount": 4}
        ]
      }
    ]`
	_, err = importer.ImportBuildings(context.Background(), strings.NewReader(updated))
	require.NoError(t, err)

	repo := persistence.NewBuildingRepository(db)
	ext, err := repo.FindByTicker(context.Background(), "EXT")
	require.NoError(t, err)

	// The second import fully replaces the construction bill.
	require.Len(t, ext.Costs, 2)
	bill := map[string]float64{}
	for _, cost := range ext.Costs {
		bill[cost.MaterialTicker] = cost.Amount
	}
	assert.Equal(t, map[string]float64{"BSE": 12, "TRU": 4}, bill)
}

func TestImportRecipes(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	export := `[
      {
        "RecipeId": "SME#4xSIO=>1xSI", "BuildingTicker": "SME",
        "RecipeName": "4xSIO=>1xSI", "TimeMs": 17280000,
        "Inputs": [{"Ticker": "SIO", "Amount": 4}],
        "Outputs": [{"Ticker": "SI", "Amount": 1}]
      }
    ]`
	count, err := importer.ImportRecipes(context.Background(), strings.NewReader(export))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	recipes, err := persistence.NewRecipeRepository(db).FindByBuilding(context.Background(), "SME")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "SIO", recipes[0].Inputs[0].Ticker)
	assert.Equal(t, "SI", recipes[0].Outputs[0].Ticker)
}

func TestImportMaterials(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	export := `[
      {"Ticker": "SIO", "Name": "siliconOre", "CategoryName": "ores", "Weight": 1.7, "Volume": 1.0}
    ]`
	count, err := importer.ImportMaterials(context.Background(), strings.NewReader(export))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	found, err := persistence.NewMaterialRepository(db).FindByTicker(context.Background(), "SIO")
	require.NoError(t, err)
	assert.Equal(t, "ores", found.Category)
}

func TestImportExchange(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	export := `[
      {
        "ExchangeTicker": "SIO.AI1", "MaterialTicker": "SIO", "ExchangeCode": "AI1",
        "Ask": 110, "Bid": 90, "PriceAverage": 100, "Supply": 5000, "Demand": 4000
      }
    ]`
	count, err := importer.ImportExchange(context.Background(), strings.NewReader(export))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	quote, err := persistence.NewExchangeRepository(db).FindByCode(context.Background(), "SIO.AI1")
	require.NoError(t, err)
	assert.Equal(t, 110.0, quote.Ask)
	assert.Equal(t, 5000.0, quote.Supply)
}

func TestImportPlanets(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	export := `[
      {
        "PlanetNaturalId": "FIX-001", "PlanetName": "Fixture", "Surface": true,
        "Gravity": 1.0, "Pressure": 1.0, "Temperature": 20,
        "Resources": [
          {"MaterialTicker": "SIO", "ResourceType": "MINERAL", "DailyExtraction": 10}
        ]
      }
    ]`
	count, err := importer.ImportPlanets(context.Background(), strings.NewReader(export))

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	found, err := persistence.NewPlanetRepository(db).FindByNaturalID(context.Background(), "FIX-001")
	require.NoError(t, err)
	assert.True(t, found.Surface)
	require.Len(t, found.Resources, 1)
	assert.Equal(t, 10.0, found.Resources[0].DailyExtraction)
}

func TestImport_MalformedJSON(t *testing.T) {
	db := helpers.NewTestDB(t)
	importer := fio.NewImporter(db)

	_, err := importer.ImportMaterials(context.Background(), strings.NewReader("{not json"))

	assert.Error(t, err)
}
