package planning_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/planning"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
	"github.com/jplacht/prunplanner-go/test/helpers"
)

func fixtureCalculator(t *testing.T, p *plan.Plan, cx *exchange.CXData) *planning.Calculator {
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

	tickers := make([]string, 0, len(p.Buildings))
	for _, instance := range p.Buildings {
		tickers = append(tickers, instance.Ticker)
	}

	snapshot, err := loader.Load(context.Background(), p.PlanetID, tickers)
	require.NoError(t, err)

	resolver := pricing.NewResolver(snapshot, cx, p.PlanetID, nil)
	return planning.NewCalculator(snapshot, resolver)
}

func TestCalculate_ExtractionPlan(t *testing.T) {
	// Arrange
	p := helpers.FixturePlan()
	calculator := fixtureCalculator(t, &p, nil)

	// Act
	result, err := calculator.Calculate(&p)

	// Assert
	require.NoError(t, err)

	// Area: base 250 plus one permit, core module 25 + EXT 25 + 2x HB1.
	assert.Equal(t, 1, result.Area.Permits)
	assert.InDelta(t, 500.0, result.Area.AreaTotal, 1e-9)
	assert.InDelta(t, 70.0, result.Area.AreaUsed, 1e-9)
	assert.InDelta(t, 430.0, result.Area.AreaLeft, 1e-9)

	// Workforce: 60 pioneers demanded, 200 housed, fully satisfied.
	pioneer := result.Workforce[workforce.Pioneer]
	assert.InDelta(t, 60.0, pioneer.Required, 1e-9)
	assert.InDelta(t, 200.0, pioneer.Capacity, 1e-9)
	assert.InDelta(t, 140.0, pioneer.Left, 1e-9)
	assert.InDelta(t, 1.0, pioneer.Efficiency, 1e-9)
	assert.Zero(t, result.Workforce[workforce.Settler].Required)

	require.Len(t, result.Production.Buildings, 1)
	ext := result.Production.Buildings[0]
	assert.Equal(t, "EXT", ext.Ticker)
	assert.InDelta(t, 1.0, ext.TotalEfficiency, 1e-9)

	// The deposit yields 10 x 0.7 per day, rounded up to 7 units per
	// run with the cycle stretched to exactly one day.
	require.Len(t, ext.ActiveRecipes, 1)
	active := ext.ActiveRecipes[0]
	assert.Equal(t, "EXT#SIO", active.RecipeID)
	assert.InDelta(t, building.MSPerDay, active.TimeMs, 1e-3)
	assert.InDelta(t, 1.0, active.DailyShare, 1e-9)

	// EXT construction: 16 BSE at 300 plus 100 MCG surcharge at 25.
	assert.InDelta(t, 7300.0, ext.ConstructionCost, 1e-6)
	assert.InDelta(t, 336.0, ext.WorkforceDailyCost, 1e-6)

	// Daily flow: 7 SIO out, pioneer consumables in.
	flows := make(map[string]float64, len(result.MaterialIO))
	for _, flow := range result.MaterialIO {
		flows[flow.Ticker] = flow.Delta
	}
	assert.InDelta(t, 7.0, flows["SIO"], 1e-9)
	assert.InDelta(t, -2.4, flows["DW"], 1e-9)
	assert.InDelta(t, -2.4, flows["RAT"], 1e-9)
	assert.InDelta(t, -0.3, flows["OVE"], 1e-9)
	assert.InDelta(t, -0.12, flows["PWO"], 1e-9)
	assert.InDelta(t, -0.3, flows["COF"], 1e-9)

	// Financials: 700 revenue, 336 consumables, 7300/180 degradation.
	degradation := 7300.0 / planning.DegradationDays
	assert.InDelta(t, 700.0, result.Revenue, 1e-6)
	assert.InDelta(t, 336.0+degradation, result.Cost, 1e-6)
	assert.InDelta(t, 700.0-336.0-degradation, result.Profit, 1e-6)

	// Construction value: CM 5300 + EXT 7300 + 2x HB1 2800.
	assert.InDelta(t, 18200.0, result.Overview.TotalConstructionCost, 1e-6)
	assert.InDelta(t, 18200.0/result.Profit, result.Overview.ROI, 1e-6)

	// Every infrastructure type gets priced, placed or not.
	assert.InDelta(t, 2800.0, result.InfrastructureCosts[building.HB1], 1e-6)
	assert.InDelta(t, 3600.0, result.InfrastructureCosts[building.HB2], 1e-6)
	assert.InDelta(t, 2900.0, result.InfrastructureCosts[building.STO], 1e-6)

	// Bills: core module, EXT and the placed habitation.
	billTickers := make([]string, len(result.ConstructionBills))
	for i, bill := range result.ConstructionBills {
		billTickers[i] = bill.Ticker
	}
	assert.ElementsMatch(t, []string{"CM", "EXT", "HB1"}, billTickers)
}

func TestCalculate_COGMBreakdown(t *testing.T) {
	p := helpers.FixturePlan()
	calculator := fixtureCalculator(t, &p, nil)

	result, err := calculator.Calculate(&p)
	require.NoError(t, err)

	cogm := result.Production.Buildings[0].ActiveRecipes[0].COGM
	require.NotNil(t, cogm)

	degradation := 7300.0 / planning.DegradationDays
	assert.InDelta(t, 1.0, cogm.RuntimeShare, 1e-9)
	assert.InDelta(t, degradation, cogm.DegradationShare, 1e-6)
	assert.InDelta(t, 336.0, cogm.WorkforceCostShare, 1e-6)
	assert.Empty(t, cogm.InputCosts)
	assert.InDelta(t, degradation+336.0, cogm.TotalCost, 1e-6)

	// The run cost splits evenly over the 7 output units.
	require.Len(t, cogm.Outputs, 1)
	assert.InDelta(t, cogm.TotalCost/7.0, cogm.Outputs[0].CostPerUnit, 1e-6)
	assert.InDelta(t, 700.0, cogm.OutputRevenue, 1e-6)
	assert.InDelta(t, 700.0-cogm.TotalCost, cogm.TotalProfit, 1e-6)
}

func TestCalculate_Visitation(t *testing.T) {
	p := helpers.FixturePlan()
	p.Infrastructure = append(p.Infrastructure,
		plan.InfrastructureInstance{Type: building.STO, Amount: 1})
	calculator := fixtureCalculator(t, &p, nil)

	result, err := calculator.Calculate(&p)
	require.NoError(t, err)

	v := result.Visitation
	assert.InDelta(t, 6500.0, v.StorageCapacity, 1e-9)
	assert.InDelta(t, 11.9, v.DailyWeightExport, 1e-9) // 7 SIO x 1.7t
	assert.InDelta(t, 7.0, v.DailyVolumeExport, 1e-9)
	assert.Greater(t, v.DailyWeightImport, 0.0)
	assert.InDelta(t, v.StorageCapacity/v.DailyWeight, v.StorageFilled, 1e-9)
}

func TestCalculate_IdlePlanNeverFillsStorage(t *testing.T) {
	p := helpers.FixturePlan()
	p.Buildings = nil
	p.Infrastructure = nil
	calculator := fixtureCalculator(t, &p, nil)

	result, err := calculator.Calculate(&p)
	require.NoError(t, err)

	assert.True(t, math.IsInf(result.Visitation.StorageFilled, 1))
	assert.True(t, math.IsInf(result.Overview.ROI, 1))
	assert.Zero(t, result.Revenue)
}

func TestCalculate_EfficiencyBonusesStack(t *testing.T) {
	p := helpers.FixturePlan()
	p.CorpHQ = true
	p.COGC = building.COGCProgram(building.ResourceExtraction)
	p.Experts = []plan.ExpertAllocation{
		{Type: building.ResourceExtraction, Amount: 5},
	}
	calculator := fixtureCalculator(t, &p, nil)

	result, err := calculator.Calculate(&p)
	require.NoError(t, err)

	ext := result.Production.Buildings[0]
	expected := (1 + 0.2840) * 1.25 * 1.1 * 1.0
	assert.InDelta(t, expected, ext.TotalEfficiency, 1e-9)

	names := make([]string, len(ext.EfficiencyElements))
	for i, element := range ext.EfficiencyElements {
		names[i] = element.Name
	}
	assert.ElementsMatch(t, []string{"experts", "cogc", "corphq", "workforce"}, names)

	// Higher efficiency scales the daily output linearly.
	flows := make(map[string]float64)
	for _, flow := range result.MaterialIO {
		flows[flow.Ticker] = flow.Delta
	}
	assert.InDelta(t, 7.0*expected, flows["SIO"], 1e-6)
}

func TestCalculate_UnderstaffedWorkforceStallsProduction(t *testing.T) {
	p := helpers.FixturePlan()
	p.Infrastructure = nil // nobody housed
	p.Workforce = []plan.WorkforceLuxury{
		{Type: workforce.Pioneer, Lux1: false, Lux2: false},
	}
	calculator := fixtureCalculator(t, &p, nil)

	result, err := calculator.Calculate(&p)
	require.NoError(t, err)

	// Satisfaction drops to the 0.02 base; output follows.
	ext := result.Production.Buildings[0]
	assert.InDelta(t, 0.02, ext.TotalEfficiency, 1e-9)

	flows := make(map[string]float64)
	for _, flow := range result.MaterialIO {
		flows[flow.Ticker] = flow.Delta
	}
	assert.InDelta(t, 7.0*0.02, flows["SIO"], 1e-6)
}

func TestCalculate_UnknownRecipeFails(t *testing.T) {
	p := helpers.FixturePlan()
	p.Buildings[0].ActiveRecipes[0].RecipeID = "EXT#XYZ"
	calculator := fixtureCalculator(t, &p, nil)

	_, err := calculator.Calculate(&p)

	var notFound *building.ErrRecipeNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "EXT#XYZ", notFound.RecipeID)
}

func TestCalculate_Deterministic(t *testing.T) {
	p := helpers.FixturePlan()
	calculator := fixtureCalculator(t, &p, nil)

	first, err := calculator.Calculate(&p)
	require.NoError(t, err)
	second, err := calculator.Calculate(&p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
