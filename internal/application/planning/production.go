package planning

import (
	"math"
	"sort"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// productionResult derives the production state of every building
// instance group in the plan and combines their daily material flows.
func (c *Calculator) productionResult(p *plan.Plan, wf workforce.Record, infos map[string]*buildingInfo) (ProductionResult, error) {
	result := ProductionResult{
		Buildings: make([]ProductionBuilding, 0, len(p.Buildings)),
	}

	flows := make([][]material.IOMinimal, 0, len(p.Buildings))

	for _, instance := range p.Buildings {
		info, ok := infos[instance.Ticker]
		if !ok {
			return ProductionResult{}, &building.ErrBuildingNotFound{Ticker: instance.Ticker}
		}

		pb, err := c.produceBuilding(p, instance, info, wf)
		if err != nil {
			return ProductionResult{}, err
		}

		flows = append(flows, buildingMaterialIO(&pb))
		result.Buildings = append(result.Buildings, pb)
	}

	result.MaterialIO = material.CombineIOMinimal(flows...)
	return result, nil
}

// produceBuilding derives one instance group: its efficiency, queued
// recipes with COGM, all recipe options and its own daily revenue.
func (c *Calculator) produceBuilding(p *plan.Plan, instance plan.BuildingInstance, info *buildingInfo, wf workforce.Record) (ProductionBuilding, error) {
	efficiency, elements := buildingEfficiency(info.building, p, wf)

	pb := ProductionBuilding{
		Ticker:                instance.Ticker,
		Amount:                instance.Amount,
		TotalEfficiency:       efficiency,
		EfficiencyElements:    elements,
		ConstructionMaterials: info.constructionMaterials,
		ConstructionCost:      info.constructionCost,
		WorkforceMaterials:    info.workforceMaterials,
		WorkforceDailyCost:    info.workforceDailyCost,
		Expertise:             info.building.Expertise,
	}

	recipesByID := make(map[string]*building.Recipe, len(info.recipes))
	for i := range info.recipes {
		recipesByID[info.recipes[i].RecipeID] = &info.recipes[i]
	}

	for _, active := range instance.ActiveRecipes {
		recipe, ok := recipesByID[active.RecipeID]
		if !ok {
			return ProductionBuilding{}, &building.ErrRecipeNotFound{
				BuildingTicker: instance.Ticker,
				RecipeID:       active.RecipeID,
			}
		}

		adjusted := recipe.TimeMs * active.Amount / efficiency
		pb.TotalBatchTime += adjusted

		pb.ActiveRecipes = append(pb.ActiveRecipes, ProductionRecipe{
			RecipeID: active.RecipeID,
			Amount:   active.Amount,
			TimeMs:   adjusted,
			Recipe:   *recipe,
		})
	}

	for i := range pb.ActiveRecipes {
		active := &pb.ActiveRecipes[i]
		if pb.TotalBatchTime > 0 {
			active.DailyShare = active.TimeMs / pb.TotalBatchTime
		}
		cogm := c.recipeCOGM(&active.Recipe, &pb)
		active.COGM = &cogm
	}

	pb.RecipeOptions = c.recipeOptions(info, &pb)
	pb.DailyRevenue = c.buildingDailyRevenue(&pb)

	return pb, nil
}

// recipeCOGM breaks down the cost of a single recipe run: the run's
// share of daily degradation and workforce upkeep plus its input bill,
// split evenly across all output units.
func (c *Calculator) recipeCOGM(recipe *building.Recipe, pb *ProductionBuilding) COGM {
	runtime := recipe.TimeMs / pb.TotalEfficiency

	cogm := COGM{
		Runtime:            runtime,
		RuntimeShare:       runtime / building.MSPerDay,
		Efficiency:         pb.TotalEfficiency,
		Degradation:        pb.DegradationPerDay(),
		WorkforceCostTotal: pb.WorkforceDailyCost,
	}
	cogm.DegradationShare = cogm.Degradation * cogm.RuntimeShare
	cogm.WorkforceCostShare = cogm.WorkforceCostTotal * cogm.RuntimeShare

	for _, input := range recipe.Inputs {
		unit := c.prices.Price(input.Ticker, exchange.Buy)
		cogm.InputCosts = append(cogm.InputCosts, COGMInput{
			Ticker:    input.Ticker,
			Amount:    input.Amount,
			CostUnit:  unit,
			CostTotal: unit * input.Amount,
		})
		cogm.InputTotal += unit * input.Amount
	}
	sort.Slice(cogm.InputCosts, func(i, j int) bool {
		return cogm.InputCosts[i].Ticker < cogm.InputCosts[j].Ticker
	})

	cogm.TotalCost = cogm.DegradationShare + cogm.WorkforceCostShare + cogm.InputTotal

	outputUnits := recipe.OutputAmountTotal()
	for _, output := range recipe.Outputs {
		entry := COGMOutput{Ticker: output.Ticker, Amount: output.Amount}
		if outputUnits > 0 {
			entry.CostPerUnit = cogm.TotalCost / outputUnits
			entry.CostTotal = entry.CostPerUnit * output.Amount
		}
		cogm.Outputs = append(cogm.Outputs, entry)
		cogm.OutputRevenue += c.prices.Price(output.Ticker, exchange.Sell) * output.Amount
	}
	sort.Slice(cogm.Outputs, func(i, j int) bool {
		return cogm.Outputs[i].Ticker < cogm.Outputs[j].Ticker
	})

	cogm.TotalProfit = cogm.OutputRevenue - cogm.TotalCost
	return cogm
}

// recipeOptions projects every recipe the building can run to full
// daily utilisation under the current efficiency.
func (c *Calculator) recipeOptions(info *buildingInfo, pb *ProductionBuilding) []RecipeOption {
	options := make([]RecipeOption, 0, len(info.recipes))
	areaPerBuilding := info.building.AreaCost
	if layout, ok := OptimalLayouts[pb.Ticker]; ok {
		areaPerBuilding = layout.AreaPerBuilding()
	}

	for _, recipe := range info.recipes {
		income := 0.0
		for _, output := range recipe.Outputs {
			income += c.prices.Price(output.Ticker, exchange.Sell) * output.Amount
		}
		cost := 0.0
		for _, input := range recipe.Inputs {
			cost += c.prices.Price(input.Ticker, exchange.Buy) * input.Amount
		}

		runsPerDay := building.MSPerDay / (recipe.TimeMs / pb.TotalEfficiency)
		dailyRevenue := (income-cost)*runsPerDay - pb.DegradationPerDay() - pb.WorkforceDailyCost

		option := RecipeOption{
			Recipe:       recipe,
			DailyRevenue: dailyRevenue,
			ROI:          pb.ConstructionCost / dailyRevenue,
		}
		option.TimeMs = recipe.TimeMs / pb.TotalEfficiency
		if areaPerBuilding > 0 {
			option.ProfitPerArea = dailyRevenue / areaPerBuilding
		}

		options = append(options, option)
	}

	return options
}

// buildingMaterialIO converts the instance group's recipe rotation into
// a gross daily material flow: every queued batch scaled to runs per
// day and the placed building count.
func buildingMaterialIO(pb *ProductionBuilding) []material.IOMinimal {
	if pb.TotalBatchTime <= 0 || pb.Amount == 0 {
		return nil
	}

	scale := building.MSPerDay / pb.TotalBatchTime * float64(pb.Amount)

	flows := make([]material.IOMinimal, 0, len(pb.ActiveRecipes)*3)
	for _, active := range pb.ActiveRecipes {
		for _, input := range active.Recipe.Inputs {
			flows = append(flows, material.IOMinimal{
				Ticker: input.Ticker,
				Input:  input.Amount * active.Amount * scale,
			})
		}
		for _, output := range active.Recipe.Outputs {
			flows = append(flows, material.IOMinimal{
				Ticker: output.Ticker,
				Output: output.Amount * active.Amount * scale,
			})
		}
	}

	return material.CombineIOMinimal(flows)
}

// buildingDailyRevenue nets the instance group's own daily flow against
// its upkeep: workforce cost per placed building plus the building
// type's daily degradation.
func (c *Calculator) buildingDailyRevenue(pb *ProductionBuilding) float64 {
	net := 0.0
	for _, flow := range buildingMaterialIO(pb) {
		delta := flow.Output - flow.Input
		direction := exchange.Sell
		if delta < 0 {
			direction = exchange.Buy
		}
		net += c.prices.Price(flow.Ticker, direction) * delta
	}

	revenue := net - pb.WorkforceDailyCost*float64(pb.Amount) - pb.DegradationPerDay()
	if math.IsNaN(revenue) {
		return 0
	}
	return revenue
}
