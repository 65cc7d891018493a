package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
)

// FixturePlanetID is the natural ID of the seeded test planet: a rocky
// world with otherwise normal environmental conditions and one SIO
// mineral deposit.
const FixturePlanetID = "FIX-001"

// SeedGameData populates the test database with a small, internally
// consistent game-data universe: materials, buildings (including every
// habitation type, storage and the core module), one smelter recipe,
// universe average prices plus AI1 quotes, and one planet.
func SeedGameData(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, Seed(db))
}

// Seed inserts the fixture universe. Split out from SeedGameData for
// godog scenarios, which have no *testing.T at hand.
func Seed(db *gorm.DB) error {
	materials := []persistence.MaterialModel{
		{Ticker: "BSE", Name: "Basic Structural Elements", Category: "construction prefabs", Weight: 0.3, Volume: 0.5},
		{Ticker: "TRU", Name: "Truss", Category: "construction prefabs", Weight: 0.1, Volume: 1.5},
		{Ticker: "MCG", Name: "Mineral Construction Granulate", Category: "construction materials", Weight: 0.24, Volume: 0.1},
		{Ticker: "SIO", Name: "Silicon Ore", Category: "ores", Weight: 1.7, Volume: 1.0},
		{Ticker: "SI", Name: "Silicon", Category: "metals", Weight: 0.9, Volume: 0.4},
		{Ticker: "DW", Name: "Drinking Water", Category: "consumables (basic)", Weight: 0.1, Volume: 0.1},
		{Ticker: "RAT", Name: "Basic Rations", Category: "consumables (basic)", Weight: 0.21, Volume: 0.1},
		{Ticker: "OVE", Name: "Basic Overalls", Category: "consumables (basic)", Weight: 0.05, Volume: 0.05},
		{Ticker: "PWO", Name: "Padded Work Overall", Category: "consumables (luxury)", Weight: 0.05, Volume: 0.05},
		{Ticker: "COF", Name: "Caffeinated Infusion", Category: "consumables (luxury)", Weight: 0.1, Volume: 0.1},
	}
	if err := db.Create(&materials).Error; err != nil {
		return err
	}

	buildings := []persistence.BuildingModel{
		{
			Ticker: "CM", Name: "Core Module", Type: "CORE", AreaCost: 25,
			Costs: []persistence.BuildingCostModel{
				{MaterialTicker: "BSE", Amount: 4},
				{MaterialTicker: "TRU", Amount: 8},
			},
		},
		{
			Ticker: "EXT", Name: "Extractor", Type: "PRODUCTION", AreaCost: 25,
			Pioneers: 60, Expertise: "RESOURCE_EXTRACTION",
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 16}},
		},
		{
			Ticker: "SME", Name: "Smelter", Type: "PRODUCTION", AreaCost: 20,
			Pioneers: 50, Expertise: "METALLURGY",
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 8}},
		},
		{
			Ticker: "HB1", Name: "Habitation Pioneer", Type: "INFRASTRUCTURE", AreaCost: 10,
			HabPioneers: 100,
			Costs:       []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 6}},
		},
		{
			Ticker: "HB2", Name: "Habitation Settler", Type: "INFRASTRUCTURE", AreaCost: 12,
			HabSettlers: 100,
			Costs:       []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 8}},
		},
		{
			Ticker: "HB3", Name: "Habitation Technician", Type: "INFRASTRUCTURE", AreaCost: 14,
			HabTechnicians: 100,
			Costs:          []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 10}},
		},
		{
			Ticker: "HB4", Name: "Habitation Engineer", Type: "INFRASTRUCTURE", AreaCost: 16,
			HabEngineers: 100,
			Costs:        []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 12}},
		},
		{
			Ticker: "HB5", Name: "Habitation Scientist", Type: "INFRASTRUCTURE", AreaCost: 18,
			HabScientists: 100,
			Costs:         []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 14}},
		},
		{
			Ticker: "HBB", Name: "Habitation Barracks", Type: "INFRASTRUCTURE", AreaCost: 14,
			HabPioneers: 75, HabSettlers: 75,
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 10}},
		},
		{
			Ticker: "HBC", Name: "Habitation Commune", Type: "INFRASTRUCTURE", AreaCost: 17,
			HabSettlers: 75, HabTechnicians: 75,
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 12}},
		},
		{
			Ticker: "HBM", Name: "Habitation Manors", Type: "INFRASTRUCTURE", AreaCost: 20,
			HabTechnicians: 75, HabEngineers: 75,
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 16}},
		},
		{
			Ticker: "HBL", Name: "Habitation Luxury", Type: "INFRASTRUCTURE", AreaCost: 22,
			HabEngineers: 75, HabScientists: 75,
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 18}},
		},
		{
			Ticker: "STO", Name: "Storage Unit", Type: "INFRASTRUCTURE", AreaCost: 5,
			Costs: []persistence.BuildingCostModel{{MaterialTicker: "BSE", Amount: 8}},
		},
	}
	if err := db.Create(&buildings).Error; err != nil {
		return err
	}

	recipes := []persistence.RecipeModel{
		{
			RecipeID: "SME#4xSIO=>1xSI", BuildingTicker: "SME",
			RecipeName: "4xSIO=>1xSI", TimeMs: 17_280_000,
			Materials: []persistence.RecipeMaterialModel{
				{Ticker: "SIO", Amount: 4, Side: "input"},
				{Ticker: "SI", Amount: 1, Side: "output"},
			},
		},
	}
	if err := db.Create(&recipes).Error; err != nil {
		return err
	}

	universePrices := map[string]float64{
		"BSE": 300, "TRU": 200, "MCG": 25,
		"SIO": 100, "SI": 600,
		"DW": 50, "RAT": 60, "OVE": 40, "PWO": 200, "COF": 120,
	}
	quotes := make([]persistence.ExchangeModel, 0, len(universePrices)+2)
	for ticker, avg := range universePrices {
		quotes = append(quotes, persistence.ExchangeModel{
			TickerID:       ticker + ".PP30D_UNIVERSE",
			MaterialTicker: ticker,
			ExchangeCode:   "PP30D_UNIVERSE",
			PriceAverage:   avg,
		})
	}
	quotes = append(quotes,
		persistence.ExchangeModel{
			TickerID: "SIO.AI1", MaterialTicker: "SIO", ExchangeCode: "AI1",
			Ask: 110, Bid: 90, PriceAverage: 100, Supply: 5000, Demand: 4000,
		},
		persistence.ExchangeModel{
			TickerID: "SI.AI1", MaterialTicker: "SI", ExchangeCode: "AI1",
			Ask: 650, Bid: 550, PriceAverage: 600, Supply: 2000, Demand: 2500,
		},
	)
	if err := db.Create(&quotes).Error; err != nil {
		return err
	}

	planet := persistence.PlanetModel{
		NaturalID: FixturePlanetID, Name: "Fixture",
		Surface: true, Gravity: 1.0, Pressure: 1.0, Temperature: 20,
		Resources: []persistence.PlanetResourceModel{
			{MaterialTicker: "SIO", ResourceType: "MINERAL", DailyExtraction: 10},
		},
	}
	return db.Create(&planet).Error
}

// FixturePlan returns a valid plan against the seeded universe: one
// extractor working the SIO deposit, housed by two pioneer habitations.
func FixturePlan() plan.Plan {
	return plan.Plan{
		Name:     "fixture-extraction",
		PlanetID: FixturePlanetID,
		Permits:  1,
		COGC:     building.COGCNone,
		Buildings: []plan.BuildingInstance{
			{
				Ticker: "EXT",
				Amount: 1,
				ActiveRecipes: []plan.ActiveRecipe{
					{RecipeID: "EXT#SIO", Amount: 1},
				},
			},
		},
		Infrastructure: []plan.InfrastructureInstance{
			{Type: building.HB1, Amount: 2},
		},
	}
}
