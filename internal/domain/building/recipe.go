package building

// MSPerDay is the number of milliseconds in one game day, the base
// horizon of all daily-rate calculations.
const MSPerDay float64 = 86_400_000

// RecipeMaterial is one input or output entry of a recipe.
type RecipeMaterial struct {
	Ticker string
	Amount float64
}

// Recipe is static reference data describing one production option of a
// building: its cycle time and material conversion per run.
type Recipe struct {
	RecipeID       string
	BuildingTicker string
	RecipeName     string
	TimeMs         float64
	Inputs         []RecipeMaterial
	Outputs        []RecipeMaterial
}

// OutputAmountTotal sums the unit count across all outputs of one run.
func (r *Recipe) OutputAmountTotal() float64 {
	total := 0.0
	for _, out := range r.Outputs {
		total += out.Amount
	}
	return total
}
