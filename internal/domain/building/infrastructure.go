package building

// InfrastructureType identifies one of the plan-placeable
// infrastructure buildings: the nine habitation types plus storage.
type InfrastructureType string

const (
	HB1 InfrastructureType = "HB1"
	HB2 InfrastructureType = "HB2"
	HB3 InfrastructureType = "HB3"
	HB4 InfrastructureType = "HB4"
	HB5 InfrastructureType = "HB5"
	HBB InfrastructureType = "HBB"
	HBC InfrastructureType = "HBC"
	HBM InfrastructureType = "HBM"
	HBL InfrastructureType = "HBL"
	STO InfrastructureType = "STO"
)

// AllInfrastructure lists every infrastructure type in a fixed order.
var AllInfrastructure = []InfrastructureType{
	HB1, HB2, HB3, HB4, HB5, HBB, HBC, HBM, HBL, STO,
}

// HabitationTypes lists the infrastructure types that house workforce,
// in the order used by the habitation optimizer.
var HabitationTypes = []InfrastructureType{
	HB1, HB2, HB3, HB4, HB5, HBB, HBC, HBM, HBL,
}

// CoreModuleTicker is the building every base carries exactly once.
const CoreModuleTicker = "CM"

// IsInfrastructureTicker reports whether a building ticker names an
// infrastructure type.
func IsInfrastructureTicker(ticker string) bool {
	for _, inf := range AllInfrastructure {
		if string(inf) == ticker {
			return true
		}
	}
	return false
}
