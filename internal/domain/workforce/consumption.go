package workforce

import "github.com/jplacht/prunplanner-go/internal/domain/material"

// luxury tier gates for a consumable entry
const (
	needAlways = iota
	needLux1
	needLux2
)

type need struct {
	ticker     string
	perHundred float64 // units per 100 workers per day
	gate       int
}

// Daily consumable needs per workforce tier, per 100 workers. Entries
// gated behind needLux1/needLux2 only apply while the matching luxury
// flag is enabled.
var needsByType = [numTypes][]need{
	Pioneer: {
		{"DW", 4, needAlways},
		{"RAT", 4, needAlways},
		{"OVE", 0.5, needAlways},
		{"PWO", 0.2, needLux1},
		{"COF", 0.5, needLux2},
	},
	Settler: {
		{"DW", 5, needAlways},
		{"RAT", 6, needAlways},
		{"EXO", 0.5, needAlways},
		{"PT", 0.5, needAlways},
		{"REP", 0.2, needLux1},
		{"KOM", 1, needLux2},
	},
	Technician: {
		{"DW", 7.5, needAlways},
		{"RAT", 7, needAlways},
		{"MED", 0.5, needAlways},
		{"HMS", 0.5, needAlways},
		{"SCN", 0.1, needAlways},
		{"ALE", 1, needLux1},
		{"SC", 0.1, needLux2},
	},
	Engineer: {
		{"DW", 10, needAlways},
		{"FIM", 7, needAlways},
		{"MED", 0.5, needAlways},
		{"HSS", 0.2, needAlways},
		{"PDA", 0.1, needAlways},
		{"GIN", 1, needLux1},
		{"VG", 0.2, needLux2},
	},
	Scientist: {
		{"DW", 10, needAlways},
		{"MEA", 7, needAlways},
		{"MED", 0.5, needAlways},
		{"LC", 0.2, needAlways},
		{"WS", 0.1, needAlways},
		{"WIN", 1, needLux1},
		{"NST", 0.1, needLux2},
	},
}

// Consumption derives the daily consumable flow implied by a workforce
// record. Consumption scales with the required headcount of each tier;
// housing overcapacity does not consume.
func Consumption(record Record) []material.IOMinimal {
	lists := make([][]material.IOMinimal, 0, len(AllTypes))

	for _, t := range AllTypes {
		element := record[t]
		if element.Required <= 0 {
			continue
		}

		list := make([]material.IOMinimal, 0, len(needsByType[t]))
		for _, n := range needsByType[t] {
			if n.gate == needLux1 && !element.Lux1 {
				continue
			}
			if n.gate == needLux2 && !element.Lux2 {
				continue
			}

			list = append(list, material.IOMinimal{
				Ticker: n.ticker,
				Input:  n.perHundred * element.Required / 100,
			})
		}
		lists = append(lists, list)
	}

	return material.CombineIOMinimal(lists...)
}
