package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/habitation"
	"github.com/jplacht/prunplanner-go/internal/application/planning"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
	"github.com/jplacht/prunplanner-go/internal/infrastructure/database"
	"github.com/jplacht/prunplanner-go/test/helpers"
)

type planContext struct {
	loader   *gamedata.Loader
	plan     plan.Plan
	result   *planning.Result
	solution habitation.Solution
	err      error
}

func (pc *planContext) reset() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	if err := helpers.Seed(db); err != nil {
		return err
	}

	pc.loader = gamedata.NewLoader(
		persistence.NewBuildingRepository(db),
		persistence.NewRecipeRepository(db),
		persistence.NewMaterialRepository(db),
		persistence.NewExchangeRepository(db),
		persistence.NewPlanetRepository(db),
	)
	pc.plan = plan.Plan{COGC: building.COGCNone}
	pc.result = nil
	pc.solution = habitation.Solution{}
	pc.err = nil
	return nil
}

func (pc *planContext) aPlanOnPlanetWithPermits(planetID string, permits int) error {
	pc.plan.PlanetID = planetID
	pc.plan.Permits = permits
	return nil
}

func (pc *planContext) thePlanPlacesBuildingsRunningRecipe(amount int, ticker string, recipeID string) error {
	pc.plan.Buildings = append(pc.plan.Buildings, plan.BuildingInstance{
		Ticker: ticker,
		Amount: amount,
		ActiveRecipes: []plan.ActiveRecipe{
			{RecipeID: recipeID, Amount: 1},
		},
	})
	return nil
}

func (pc *planContext) thePlanPlacesInfrastructure(amount int, ticker string) error {
	pc.plan.Infrastructure = append(pc.plan.Infrastructure, plan.InfrastructureInstance{
		Type:   building.InfrastructureType(ticker),
		Amount: amount,
	})
	return nil
}

func (pc *planContext) calculate() error {
	snapshot, err := pc.loader.Load(context.Background(), pc.plan.PlanetID, planTickers(&pc.plan))
	if err != nil {
		pc.err = err
		return nil
	}

	resolver := pricing.NewResolver(snapshot, nil, pc.plan.PlanetID, nil)
	pc.result, pc.err = planning.NewCalculator(snapshot, resolver).Calculate(&pc.plan)
	return nil
}

func (pc *planContext) optimizeWithGoal(goal string) error {
	if err := pc.calculate(); err != nil {
		return err
	}
	if pc.err != nil {
		return nil
	}

	infrastructure := map[building.InfrastructureType]int(pc.result.Infrastructure)
	availableArea := habitation.CalculateAvailableArea(
		pc.result.Area.AreaTotal, pc.result.Area.AreaUsed, infrastructure)

	costs := habitation.Costs(pc.result.InfrastructureCosts)
	pc.solution = habitation.Optimize(
		habitation.Goal(goal), costs, pc.result.Workforce, availableArea, true)
	return nil
}

func (pc *planContext) calculationSucceeded() error {
	if pc.err != nil {
		return fmt.Errorf("calculation failed: %w", pc.err)
	}
	if pc.result == nil {
		return fmt.Errorf("no calculation result")
	}
	return nil
}

func (pc *planContext) calculationFailed() error {
	if pc.err == nil {
		return fmt.Errorf("expected the calculation to fail")
	}
	return nil
}

func (pc *planContext) totalAreaShouldBe(expected float64) error {
	if err := pc.calculationSucceeded(); err != nil {
		return err
	}
	return compare("total area", expected, pc.result.Area.AreaTotal)
}

func (pc *planContext) usedAreaShouldBe(expected float64) error {
	if err := pc.calculationSucceeded(); err != nil {
		return err
	}
	return compare("used area", expected, pc.result.Area.AreaUsed)
}

func (pc *planContext) dailyRevenueShouldBe(expected float64) error {
	if err := pc.calculationSucceeded(); err != nil {
		return err
	}
	return compare("daily revenue", expected, pc.result.Revenue)
}

func (pc *planContext) pioneersShouldBeRequired(expected float64) error {
	if err := pc.calculationSucceeded(); err != nil {
		return err
	}
	return compare("required pioneers", expected, pc.result.Workforce[workforce.Pioneer].Required)
}

func (pc *planContext) dailyOutputShouldBe(ticker string, expected float64) error {
	if err := pc.calculationSucceeded(); err != nil {
		return err
	}
	for _, flow := range pc.result.MaterialIO {
		if flow.Ticker == ticker {
			return compare("daily "+ticker, expected, flow.Delta)
		}
	}
	return fmt.Errorf("no daily flow for %s", ticker)
}

func (pc *planContext) solutionShouldPlace(expected int, ticker string) error {
	if !pc.solution.Feasible {
		return fmt.Errorf("no feasible habitation solution")
	}
	got := pc.solution.Counts[building.InfrastructureType(ticker)]
	if got != expected {
		return fmt.Errorf("expected %d %s, got %d", expected, ticker, got)
	}
	return nil
}

func (pc *planContext) solutionCostShouldBe(expected float64) error {
	if !pc.solution.Feasible {
		return fmt.Errorf("no feasible habitation solution")
	}
	return compare("habitation cost", expected, pc.solution.Cost)
}

func compare(name string, expected float64, got float64) error {
	if math.Abs(expected-got) > 1e-6 {
		return fmt.Errorf("expected %s %v, got %v", name, expected, got)
	}
	return nil
}

func planTickers(p *plan.Plan) []string {
	tickers := make([]string, 0, len(p.Buildings))
	for _, instance := range p.Buildings {
		tickers = append(tickers, instance.Ticker)
	}
	return tickers
}

// InitializePlanScenario registers the plan calculation and habitation
// optimization step definitions.
func InitializePlanScenario(sc *godog.ScenarioContext) {
	pc := &planContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, pc.reset()
	})

	sc.Step(`^a plan on planet "([^"]*)" with (\d+) permits?$`, pc.aPlanOnPlanetWithPermits)
	sc.Step(`^the plan places (\d+) "([^"]*)" running recipe "([^"]*)"$`, pc.thePlanPlacesBuildingsRunningRecipe)
	sc.Step(`^the plan places (\d+) "([^"]*)" infrastructure$`, pc.thePlanPlacesInfrastructure)

	sc.Step(`^the plan is calculated$`, pc.calculate)
	sc.Step(`^the habitation is optimized with goal "([^"]*)"$`, pc.optimizeWithGoal)

	sc.Step(`^the calculation should succeed$`, pc.calculationSucceeded)
	sc.Step(`^the calculation should fail$`, pc.calculationFailed)
	sc.Step(`^the total area should be (\d+(?:\.\d+)?)$`, pc.totalAreaShouldBe)
	sc.Step(`^the used area should be (\d+(?:\.\d+)?)$`, pc.usedAreaShouldBe)
	sc.Step(`^the daily revenue should be (\d+(?:\.\d+)?)$`, pc.dailyRevenueShouldBe)
	sc.Step(`^(\d+(?:\.\d+)?) pioneers should be required$`, pc.pioneersShouldBeRequired)
	sc.Step(`^the daily "([^"]*)" flow should be (-?\d+(?:\.\d+)?)$`, pc.dailyOutputShouldBe)
	sc.Step(`^the solution should place (\d+) "([^"]*)"$`, pc.solutionShouldPlace)
	sc.Step(`^the habitation cost should be (\d+(?:\.\d+)?)$`, pc.solutionCostShouldBe)
}
