package planning

import (
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

const (
	cogcBonusFactor   = 1.25
	corpHQBonusFactor = 1.1

	// minEfficiency keeps adjusted run times finite for fully
	// unstaffed buildings.
	minEfficiency = 1e-9
)

// buildingEfficiency derives a building's total efficiency as the
// product of its named contributing elements: expert bonus, COGC
// program match, CorpHQ bonus and the capacity-weighted satisfaction of
// its workforce.
func buildingEfficiency(b *building.Building, p *plan.Plan, wf workforce.Record) (float64, []EfficiencyElement) {
	elements := make([]EfficiencyElement, 0, 4)

	if b.Expertise != "" {
		if amount := p.ExpertAmount(b.Expertise); amount > 0 {
			elements = append(elements, EfficiencyElement{
				Name:   "experts",
				Factor: 1 + building.ExpertBonus(amount),
			})
		}
		if p.COGC.Matches(b.Expertise) {
			elements = append(elements, EfficiencyElement{Name: "cogc", Factor: cogcBonusFactor})
		}
	}

	if p.CorpHQ {
		elements = append(elements, EfficiencyElement{Name: "corphq", Factor: corpHQBonusFactor})
	}

	if total := b.TotalWorkforce(); total > 0 {
		weighted := 0.0
		for _, t := range workforce.AllTypes {
			weighted += b.WorkforceDemand(t) * wf[t].Efficiency
		}
		elements = append(elements, EfficiencyElement{Name: "workforce", Factor: weighted / total})
	}

	efficiency := 1.0
	for _, e := range elements {
		efficiency *= e.Factor
	}
	if efficiency < minEfficiency {
		efficiency = minEfficiency
	}

	return efficiency, elements
}
