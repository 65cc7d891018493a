// Package habitation finds the cheapest or smallest habitation mix
// housing a plan's workforce. The problem is a small integer program
// over the nine habitation types; it is solved exactly by
// branch-and-bound.
package habitation

import (
	"math"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// Goal selects the optimization objective. GoalAuto minimizes cost
// within the available area and falls back to minimizing area when the
// workforce cannot be housed within it.
type Goal string

const (
	GoalAuto Goal = "auto"
	GoalCost Goal = "cost"
	GoalArea Goal = "area"
)

// Costs maps habitation types to the construction cost of one unit on
// the plan's planet.
type Costs map[building.InfrastructureType]float64

// HabAreas is the fixed area footprint of each habitation type.
var HabAreas = map[building.InfrastructureType]float64{
	building.HB1: 10,
	building.HB2: 12,
	building.HB3: 14,
	building.HB4: 16,
	building.HB5: 18,
	building.HBB: 14,
	building.HBC: 17,
	building.HBM: 20,
	building.HBL: 22,
}

// habCapacities is the per-tier housing capacity of each habitation
// type, indexed like workforce.AllTypes.
var habCapacities = map[building.InfrastructureType][5]float64{
	building.HB1: {100, 0, 0, 0, 0},
	building.HB2: {0, 100, 0, 0, 0},
	building.HB3: {0, 0, 100, 0, 0},
	building.HB4: {0, 0, 0, 100, 0},
	building.HB5: {0, 0, 0, 0, 100},
	building.HBB: {75, 75, 0, 0, 0},
	building.HBC: {0, 75, 75, 0, 0},
	building.HBM: {0, 0, 75, 75, 0},
	building.HBL: {0, 0, 0, 75, 75},
}

// Solution is the result of one optimization run.
type Solution struct {
	Feasible  bool
	Goal      Goal // the objective actually solved; auto resolves to cost or area
	Objective float64
	Counts    map[building.InfrastructureType]int
	Area      float64
	Cost      float64
}

// CalculateAvailableArea returns the area the habitation mix may
// occupy: the plan's total area minus everything that is not
// habitation. The currently placed habitation is handed back to the
// optimizer as free area.
func CalculateAvailableArea(totalArea float64, usedArea float64, infrastructure map[building.InfrastructureType]int) float64 {
	currentHabArea := 0.0
	for habType, area := range HabAreas {
		currentHabArea += float64(infrastructure[habType]) * area
	}
	productionArea := usedArea - currentHabArea
	return totalArea - productionArea
}

// Optimize finds the habitation mix covering the required workforce
// under the given goal. The returned solution is exact: no feasible mix
// has a strictly better objective. The area bound only applies to the
// cost goal when constrainArea is set; the area goal is never bounded
// so it always produces an answer.
func Optimize(goal Goal, costs Costs, required workforce.Record, availableArea float64, constrainArea bool) Solution {
	if goal == GoalAuto {
		if s := solveExact(GoalCost, costs, required, availableArea, true); s.Feasible {
			return s
		}
		// The workforce does not fit the area; minimize area without
		// the bound so callers learn how much would be needed.
		return solveExact(GoalArea, costs, required, availableArea, false)
	}
	return solveExact(goal, costs, required, availableArea, goal == GoalCost && constrainArea)
}

type searchState struct {
	objective  []float64 // objective coefficient per hab type
	areas      []float64
	costs      []float64
	caps       [][5]float64
	constrain  bool
	areaBound  float64
	best       float64
	bestCounts []int
	counts     []int
	found      bool
}

// solveExact runs a depth-first branch-and-bound over the habitation
// counts. The objective only grows along a branch, so any node whose
// optimistic completion bound reaches the incumbent is cut.
func solveExact(goal Goal, costs Costs, required workforce.Record, availableArea float64, constrainArea bool) Solution {
	n := len(building.HabitationTypes)

	state := &searchState{
		objective:  make([]float64, n),
		areas:      make([]float64, n),
		costs:      make([]float64, n),
		caps:       make([][5]float64, n),
		constrain:  constrainArea,
		areaBound:  availableArea,
		best:       math.Inf(1),
		bestCounts: make([]int, n),
		counts:     make([]int, n),
	}

	for i, habType := range building.HabitationTypes {
		state.areas[i] = HabAreas[habType]
		state.costs[i] = costs[habType]
		state.caps[i] = habCapacities[habType]
		if goal == GoalArea {
			state.objective[i] = state.areas[i]
		} else {
			state.objective[i] = state.costs[i]
		}
	}

	var remaining [5]float64
	for _, t := range workforce.AllTypes {
		remaining[t] = required[t].Required
	}

	state.search(0, remaining, 0, 0)

	if !state.found {
		return Solution{Feasible: false, Goal: goal}
	}

	solution := Solution{
		Feasible:  true,
		Goal:      goal,
		Objective: state.best,
		Counts:    make(map[building.InfrastructureType]int, n),
	}
	for i, habType := range building.HabitationTypes {
		solution.Counts[habType] = state.bestCounts[i]
		solution.Area += float64(state.bestCounts[i]) * state.areas[i]
		solution.Cost += float64(state.bestCounts[i]) * state.costs[i]
	}
	return solution
}

func (s *searchState) search(index int, remaining [5]float64, objective float64, area float64) {
	if s.constrain && area > s.areaBound {
		return
	}
	if objective >= s.best {
		return
	}

	if covered(remaining) {
		s.best = objective
		copy(s.bestCounts, s.counts)
		for i := index; i < len(s.counts); i++ {
			s.bestCounts[i] = 0
		}
		s.found = true
		return
	}

	if index == len(s.objective) {
		return
	}

	if objective+s.completionBound(index, remaining) >= s.best {
		return
	}

	// The largest useful count covers the most demanding tier this hab
	// type houses on its own.
	maxCount := 0
	for t := 0; t < 5; t++ {
		if s.caps[index][t] > 0 && remaining[t] > 0 {
			need := int(math.Ceil(remaining[t] / s.caps[index][t]))
			if need > maxCount {
				maxCount = need
			}
		}
	}

	for count := 0; count <= maxCount; count++ {
		next := remaining
		for t := 0; t < 5; t++ {
			next[t] -= s.caps[index][t] * float64(count)
		}
		s.counts[index] = count
		s.search(index+1, next, objective+float64(count)*s.objective[index], area+float64(count)*s.areas[index])
	}
	s.counts[index] = 0
}

// completionBound is an optimistic lower bound on the objective still
// needed to cover the remaining workforce using only hab types from
// index on. Each uncovered tier needs at least its demand divided by
// the best objective-per-capacity ratio any remaining type offers.
func (s *searchState) completionBound(index int, remaining [5]float64) float64 {
	bound := 0.0
	for t := 0; t < 5; t++ {
		if remaining[t] <= 0 {
			continue
		}
		bestRatio := math.Inf(1)
		for i := index; i < len(s.objective); i++ {
			if s.caps[i][t] > 0 {
				if ratio := s.objective[i] / s.caps[i][t]; ratio < bestRatio {
					bestRatio = ratio
				}
			}
		}
		if math.IsInf(bestRatio, 1) {
			// No remaining type houses this tier: the branch is dead.
			return math.Inf(1)
		}
		if tierBound := remaining[t] * bestRatio; tierBound > bound {
			bound = tierBound
		}
	}
	return bound
}

func covered(remaining [5]float64) bool {
	for t := 0; t < 5; t++ {
		if remaining[t] > 0 {
			return false
		}
	}
	return true
}
