package planning

import (
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// workforceResult derives the per-tier workforce state: demand from
// production buildings, housing capacity from infrastructure and the
// resulting satisfaction under the plan's luxury settings.
func (c *Calculator) workforceResult(p *plan.Plan, infos map[string]*buildingInfo) (workforce.Record, error) {
	var record workforce.Record

	for _, t := range workforce.AllTypes {
		lux1, lux2 := p.LuxurySetting(t)
		record[t] = workforce.Element{Type: t, Lux1: lux1, Lux2: lux2}
	}

	for _, instance := range p.Buildings {
		info, ok := infos[instance.Ticker]
		if !ok {
			continue
		}
		for _, t := range workforce.AllTypes {
			record[t].Required += info.building.WorkforceDemand(t) * float64(instance.Amount)
		}
	}

	for _, infra := range p.Infrastructure {
		info, ok := infos[string(infra.Type)]
		if !ok || info.building.Habitation == nil {
			continue
		}
		for _, t := range workforce.AllTypes {
			record[t].Capacity += info.building.Habitation.Capacity(t) * float64(infra.Amount)
		}
	}

	for _, t := range workforce.AllTypes {
		e := &record[t]
		e.Left = e.Capacity - e.Required
		e.Efficiency = workforce.Satisfaction(e.Capacity, e.Required, e.Lux1, e.Lux2)
	}

	return record, nil
}
