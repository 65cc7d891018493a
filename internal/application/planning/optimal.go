package planning

import "github.com/jplacht/prunplanner-go/internal/domain/building"

// OptimalLayout is a curated single-building base layout: how many
// production buildings of one type fit a standard permit budget
// together with the habitation mix housing their workforce.
type OptimalLayout struct {
	Ticker         string
	Amount         int
	Infrastructure map[building.InfrastructureType]int
	TotalArea      float64
}

// AreaPerBuilding is the layout's area footprint attributed to a
// single production building, habitation included.
func (o OptimalLayout) AreaPerBuilding() float64 {
	if o.Amount == 0 {
		return 0
	}
	return o.TotalArea / float64(o.Amount)
}

// OptimalLayouts holds the curated layouts keyed by building ticker.
// Resource extractors and fertility-bound farms are deliberately
// absent: their yield depends on the planet, so no single layout is
// optimal for them.
var OptimalLayouts = map[string]OptimalLayout{
	"BMP": {Ticker: "BMP", Amount: 14, Infrastructure: map[building.InfrastructureType]int{building.HB1: 14, building.STO: 1}, TotalArea: 338},
	"FP":  {Ticker: "FP", Amount: 20, Infrastructure: map[building.InfrastructureType]int{building.HB1: 8, building.STO: 1}, TotalArea: 350},
	"SME": {Ticker: "SME", Amount: 16, Infrastructure: map[building.InfrastructureType]int{building.HB1: 8, building.STO: 1}, TotalArea: 382},
	"PP1": {Ticker: "PP1", Amount: 12, Infrastructure: map[building.InfrastructureType]int{building.HB1: 10, building.STO: 1}, TotalArea: 358},
	"REF": {Ticker: "REF", Amount: 12, Infrastructure: map[building.InfrastructureType]int{building.HB1: 7, building.STO: 1}, TotalArea: 340},
	"PP2": {Ticker: "PP2", Amount: 10, Infrastructure: map[building.InfrastructureType]int{building.HB1: 4, building.HBB: 4, building.STO: 1}, TotalArea: 366},
	"CHP": {Ticker: "CHP", Amount: 10, Infrastructure: map[building.InfrastructureType]int{building.HB2: 8, building.STO: 1}, TotalArea: 376},
	"GF":  {Ticker: "GF", Amount: 12, Infrastructure: map[building.InfrastructureType]int{building.HB1: 5, building.HB2: 4, building.STO: 1}, TotalArea: 368},
	"CLF": {Ticker: "CLF", Amount: 12, Infrastructure: map[building.InfrastructureType]int{building.HB1: 6, building.HB2: 5, building.STO: 1}, TotalArea: 394},
	"WEL": {Ticker: "WEL", Amount: 10, Infrastructure: map[building.InfrastructureType]int{building.HB1: 5, building.STO: 1}, TotalArea: 320},
	"PP3": {Ticker: "PP3", Amount: 8, Infrastructure: map[building.InfrastructureType]int{building.HB2: 4, building.HB3: 4, building.STO: 1}, TotalArea: 382},
	"ELP": {Ticker: "ELP", Amount: 8, Infrastructure: map[building.InfrastructureType]int{building.HB3: 6, building.STO: 1}, TotalArea: 366},
	"PHF": {Ticker: "PHF", Amount: 8, Infrastructure: map[building.InfrastructureType]int{building.HBC: 5, building.STO: 1}, TotalArea: 378},
	"LAB": {Ticker: "LAB", Amount: 6, Infrastructure: map[building.InfrastructureType]int{building.HB4: 5, building.STO: 1}, TotalArea: 375},
	"PP4": {Ticker: "PP4", Amount: 6, Infrastructure: map[building.InfrastructureType]int{building.HB3: 3, building.HB4: 3, building.STO: 1}, TotalArea: 368},
	"SL":  {Ticker: "SL", Amount: 5, Infrastructure: map[building.InfrastructureType]int{building.HB5: 4, building.STO: 1}, TotalArea: 342},
}
