package building

import "github.com/jplacht/prunplanner-go/internal/domain/workforce"

// Expertise identifies one of the nine industry expertise categories a
// production building can belong to.
type Expertise string

const (
	Agriculture        Expertise = "AGRICULTURE"
	Chemistry          Expertise = "CHEMISTRY"
	Construction       Expertise = "CONSTRUCTION"
	Electronics        Expertise = "ELECTRONICS"
	FoodIndustries     Expertise = "FOOD_INDUSTRIES"
	FuelRefining       Expertise = "FUEL_REFINING"
	Manufacturing      Expertise = "MANUFACTURING"
	Metallurgy         Expertise = "METALLURGY"
	ResourceExtraction Expertise = "RESOURCE_EXTRACTION"
)

// AllExpertise lists the expertise categories in a fixed order.
var AllExpertise = []Expertise{
	Agriculture,
	Chemistry,
	Construction,
	Electronics,
	FoodIndustries,
	FuelRefining,
	Manufacturing,
	Metallurgy,
	ResourceExtraction,
}

// COGCProgram is the planet-level program granting an efficiency bonus
// to buildings whose expertise matches it. COGCNone disables the bonus.
type COGCProgram string

// COGCNone marks a planet without an active COGC program.
const COGCNone COGCProgram = "---"

// Matches reports whether the program boosts the given expertise.
func (p COGCProgram) Matches(e Expertise) bool {
	return p != COGCNone && string(p) == string(e)
}

// Habitation is the per-tier housing capacity an infrastructure
// building provides.
type Habitation struct {
	Pioneer    float64
	Settler    float64
	Technician float64
	Engineer   float64
	Scientist  float64
}

// Capacity returns the housing capacity for one workforce tier.
func (h Habitation) Capacity(t workforce.Type) float64 {
	switch t {
	case workforce.Pioneer:
		return h.Pioneer
	case workforce.Settler:
		return h.Settler
	case workforce.Technician:
		return h.Technician
	case workforce.Engineer:
		return h.Engineer
	case workforce.Scientist:
		return h.Scientist
	}
	return 0
}

// ConstructionCost is one material entry of a building's construction
// bill.
type ConstructionCost struct {
	MaterialTicker string
	Amount         float64
}

// Building is static reference data describing one building type.
type Building struct {
	Ticker      string
	Name        string
	Type        string
	AreaCost    float64
	Pioneers    float64
	Settlers    float64
	Technicians float64
	Engineers   float64
	Scientists  float64
	Habitation  *Habitation
	Expertise   Expertise // empty for buildings without an expertise
	Costs       []ConstructionCost
}

// WorkforceDemand returns the building's headcount demand for one tier.
func (b *Building) WorkforceDemand(t workforce.Type) float64 {
	switch t {
	case workforce.Pioneer:
		return b.Pioneers
	case workforce.Settler:
		return b.Settlers
	case workforce.Technician:
		return b.Technicians
	case workforce.Engineer:
		return b.Engineers
	case workforce.Scientist:
		return b.Scientists
	}
	return 0
}

// TotalWorkforce returns the building's headcount demand across all
// tiers.
func (b *Building) TotalWorkforce() float64 {
	total := 0.0
	for _, t := range workforce.AllTypes {
		total += b.WorkforceDemand(t)
	}
	return total
}
