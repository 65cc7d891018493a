package planning

import (
	"math"

	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	"github.com/jplacht/prunplanner-go/internal/application/pricing"
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// Calculator derives the complete result of a plan configuration from
// an immutable game-data snapshot and a price resolver. It holds no
// mutable state; one calculator can evaluate any number of plans
// concurrently.
type Calculator struct {
	snapshot *gamedata.Snapshot
	prices   *pricing.Resolver
}

// NewCalculator builds a calculator over a loaded snapshot.
func NewCalculator(snapshot *gamedata.Snapshot, prices *pricing.Resolver) *Calculator {
	return &Calculator{snapshot: snapshot, prices: prices}
}

// Calculate evaluates the plan in full. The result is freshly derived
// on every call; the plan itself is never modified.
func (c *Calculator) Calculate(p *plan.Plan) (*Result, error) {
	infos, err := c.computeBuildingInfo(p)
	if err != nil {
		return nil, err
	}

	wf, err := c.workforceResult(p, infos)
	if err != nil {
		return nil, err
	}

	production, err := c.productionResult(p, wf, infos)
	if err != nil {
		return nil, err
	}

	workforceFlow := workforce.Consumption(wf)

	result := &Result{
		CorpHQ:         p.CorpHQ,
		COGC:           p.COGC,
		Workforce:      wf,
		Area:           c.areaResult(p, infos),
		Infrastructure: infrastructureResult(p),
		Experts:        expertResult(p),
		Production:     production,
	}

	result.ProductionMaterialIO, err = c.enhance(production.MaterialIO)
	if err != nil {
		return nil, err
	}
	result.WorkforceMaterialIO, err = c.enhance(workforceFlow)
	if err != nil {
		return nil, err
	}
	result.MaterialIO, err = c.enhance(material.CombineIOMinimal(production.MaterialIO, workforceFlow))
	if err != nil {
		return nil, err
	}

	dailyDegradation := 0.0
	for _, instance := range p.Buildings {
		if info, ok := infos[instance.Ticker]; ok {
			dailyDegradation += info.constructionCost * float64(instance.Amount) / DegradationDays
		}
	}

	materialCost, materialRevenue := 0.0, 0.0
	for _, flow := range result.MaterialIO {
		if flow.Delta < 0 {
			materialCost -= flow.Price
		} else {
			materialRevenue += flow.Price
		}
	}

	result.Revenue = materialRevenue
	result.Cost = materialCost + dailyDegradation
	result.Profit = materialRevenue - materialCost - dailyDegradation

	result.InfrastructureCosts, err = c.infrastructureCosts(infos)
	if err != nil {
		return nil, err
	}
	result.ConstructionBills = c.constructionBills(p, infos)

	result.Overview = overview(result, infos, p, dailyDegradation, materialCost, materialRevenue)
	result.Visitation = visitation(result.MaterialIO, p.InfrastructureAmount(building.STO))

	return result, nil
}

// enhance nets a gross flow, attaches catalogue attributes and prices
// the daily delta.
func (c *Calculator) enhance(flow []material.IOMinimal) ([]material.IO, error) {
	enhanced, err := material.EnhanceIOMinimal(flow, c.snapshot)
	if err != nil {
		return nil, err
	}
	return c.prices.EnhanceIOMaterial(enhanced), nil
}

// expertResult maps every expertise category to its allocation and the
// resulting production bonus.
func expertResult(p *plan.Plan) ExpertResult {
	result := make(ExpertResult, len(building.AllExpertise))
	for _, e := range building.AllExpertise {
		amount := p.ExpertAmount(e)
		result[e] = ExpertElement{
			Type:   e,
			Amount: amount,
			Bonus:  building.ExpertBonus(amount),
		}
	}
	return result
}

// infrastructureResult maps every infrastructure type to its placed
// count, zero included.
func infrastructureResult(p *plan.Plan) InfrastructureResult {
	result := make(InfrastructureResult, len(building.AllInfrastructure))
	for _, t := range building.AllInfrastructure {
		result[t] = p.InfrastructureAmount(t)
	}
	return result
}

// infrastructureCosts prices one unit of every infrastructure type on
// the plan's planet, placed or not, so alternatives can be compared.
func (c *Calculator) infrastructureCosts(infos map[string]*buildingInfo) (InfrastructureCosts, error) {
	costs := make(InfrastructureCosts, len(building.AllInfrastructure))

	for _, t := range building.AllInfrastructure {
		if info, ok := infos[string(t)]; ok {
			costs[t] = info.constructionCost
			continue
		}
		b, err := c.snapshot.Building(string(t))
		if err != nil {
			return nil, err
		}
		costs[t] = -c.prices.SumIOValue(c.constructionMaterials(b), exchange.Buy)
	}

	return costs, nil
}

// constructionBills lists the full construction bill of everything the
// plan places: production buildings, used infrastructure and the core
// module.
func (c *Calculator) constructionBills(p *plan.Plan, infos map[string]*buildingInfo) []ConstructionBill {
	bills := make([]ConstructionBill, 0, len(p.Buildings)+len(p.Infrastructure)+1)

	if info, ok := infos[building.CoreModuleTicker]; ok {
		bills = append(bills, ConstructionBill{
			Ticker:    building.CoreModuleTicker,
			Amount:    1,
			Materials: info.constructionMaterials,
		})
	}

	for _, instance := range p.Buildings {
		if info, ok := infos[instance.Ticker]; ok {
			bills = append(bills, ConstructionBill{
				Ticker:    instance.Ticker,
				Amount:    instance.Amount,
				Materials: info.constructionMaterials,
			})
		}
	}

	for _, infra := range p.Infrastructure {
		if infra.Amount == 0 {
			continue
		}
		if info, ok := infos[string(infra.Type)]; ok {
			bills = append(bills, ConstructionBill{
				Ticker:    string(infra.Type),
				Amount:    infra.Amount,
				Materials: info.constructionMaterials,
			})
		}
	}

	return bills
}

// overview condenses the result into headline figures. ROI is the
// number of days the plan's construction value takes to amortize; a
// plan without profit never amortizes and reports +Inf.
func overview(result *Result, infos map[string]*buildingInfo, p *plan.Plan, dailyDegradation, materialCost, materialRevenue float64) Overview {
	o := Overview{
		DailyCost:            materialCost,
		DailyProfit:          materialRevenue,
		DailyDegradationCost: dailyDegradation,
		Profit:               result.Profit,
	}

	for _, bill := range result.ConstructionBills {
		if info, ok := infos[bill.Ticker]; ok {
			o.TotalConstructionCost += info.constructionCost * float64(bill.Amount)
		}
	}

	if o.Profit > 0 {
		o.ROI = o.TotalConstructionCost / o.Profit
	} else {
		o.ROI = math.Inf(1)
	}

	return o
}

const (
	baseStorageCapacity = 1500.0
	storagePerSTO       = 5000.0
)

// visitation estimates the plan's logistics profile from the netted
// daily flow. StorageFilled is the number of days until the tighter of
// the weight and volume budgets runs out; a plan without any flow
// never fills and reports +Inf.
func visitation(flows []material.IO, storageCount int) Visitation {
	v := Visitation{
		StorageCapacity: baseStorageCapacity + storagePerSTO*float64(storageCount),
	}

	for _, flow := range flows {
		if flow.Delta < 0 {
			v.DailyWeightImport += -flow.TotalWeight
			v.DailyVolumeImport += -flow.TotalVolume
		} else {
			v.DailyWeightExport += flow.TotalWeight
			v.DailyVolumeExport += flow.TotalVolume
		}
	}

	v.DailyWeight = v.DailyWeightImport + v.DailyWeightExport
	v.DailyVolume = v.DailyVolumeImport + v.DailyVolumeExport

	days := math.Min(v.StorageCapacity/v.DailyWeight, v.StorageCapacity/v.DailyVolume)
	v.StorageFilled = math.Max(0, days)

	return v
}
