package planning

import "github.com/jplacht/prunplanner-go/internal/domain/plan"

const (
	// BaseArea is the area granted by the initial base permit.
	BaseArea = 250
	// AreaPerPermit is the area each additional permit grants.
	AreaPerPermit = 250
	// CoreModuleArea is the fixed footprint of the mandatory core
	// module.
	CoreModuleArea = 25
)

// areaResult derives the plan's area budget. The core module is always
// counted; production buildings and infrastructure contribute their
// area cost times placement count.
func (c *Calculator) areaResult(p *plan.Plan, infos map[string]*buildingInfo) AreaResult {
	used := float64(CoreModuleArea)

	for _, instance := range p.Buildings {
		if info, ok := infos[instance.Ticker]; ok {
			used += info.building.AreaCost * float64(instance.Amount)
		}
	}
	for _, infra := range p.Infrastructure {
		if info, ok := infos[string(infra.Type)]; ok {
			used += info.building.AreaCost * float64(infra.Amount)
		}
	}

	total := float64(BaseArea + p.Permits*AreaPerPermit)

	return AreaResult{
		Permits:   p.Permits,
		AreaUsed:  used,
		AreaTotal: total,
		AreaLeft:  total - used,
	}
}
