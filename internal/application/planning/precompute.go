package planning

import (
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// buildingInfo caches the per-ticker figures that do not change between
// instances of the same building: its construction bill on the plan's
// planet, the bill's BUY valuation and the full daily workforce upkeep
// of a single instance.
type buildingInfo struct {
	building              *building.Building
	recipes               []building.Recipe
	constructionMaterials []material.IOMinimal
	constructionCost      float64
	workforceMaterials    []material.IOMinimal
	workforceDailyCost    float64
}

// constructionMaterials assembles a building's full construction bill
// on the snapshot planet: its own costs plus environmental surcharges.
func (c *Calculator) constructionMaterials(b *building.Building) []material.IOMinimal {
	bill := make([]material.IOMinimal, 0, len(b.Costs))
	for _, cost := range b.Costs {
		bill = append(bill, material.IOMinimal{Ticker: cost.MaterialTicker, Input: cost.Amount})
	}
	return material.CombineIOMinimal(bill, c.snapshot.Planet.SpecialConstructionMaterials(b.AreaCost))
}

// fullCrew is a synthetic workforce record housing a single building's
// complete demand at full luxury provision, used to price its upkeep.
func fullCrew(b *building.Building) workforce.Record {
	var record workforce.Record
	for _, t := range workforce.AllTypes {
		record[t] = workforce.Element{
			Type:     t,
			Required: b.WorkforceDemand(t),
			Lux1:     true,
			Lux2:     true,
		}
	}
	return record
}

// computeBuildingInfo gathers static figures for every building ticker
// the plan references.
func (c *Calculator) computeBuildingInfo(p *plan.Plan) (map[string]*buildingInfo, error) {
	infos := make(map[string]*buildingInfo)

	gather := func(ticker string, withRecipes bool) error {
		if _, ok := infos[ticker]; ok {
			return nil
		}

		b, err := c.snapshot.Building(ticker)
		if err != nil {
			return err
		}

		info := &buildingInfo{building: b}

		info.constructionMaterials = c.constructionMaterials(b)
		info.constructionCost = -c.prices.SumIOValue(info.constructionMaterials, exchange.Buy)

		info.workforceMaterials = workforce.Consumption(fullCrew(b))
		info.workforceDailyCost = -c.prices.SumIOValue(info.workforceMaterials, exchange.Buy)

		if withRecipes {
			info.recipes, err = c.snapshot.BuildingRecipes(ticker)
			if err != nil {
				return err
			}
		}

		infos[ticker] = info
		return nil
	}

	for _, instance := range p.Buildings {
		if err := gather(instance.Ticker, true); err != nil {
			return nil, err
		}
	}
	for _, infra := range p.Infrastructure {
		if err := gather(string(infra.Type), false); err != nil {
			return nil, err
		}
	}
	if err := gather(building.CoreModuleTicker, false); err != nil {
		return nil, err
	}

	return infos, nil
}
