package workforce

// Type identifies one of the five workforce tiers.
type Type int

const (
	Pioneer Type = iota
	Settler
	Technician
	Engineer
	Scientist

	numTypes
)

// AllTypes lists every workforce tier in ascending seniority. Iteration
// over this slice keeps derived records in a deterministic order.
var AllTypes = [numTypes]Type{Pioneer, Settler, Technician, Engineer, Scientist}

// MarshalText encodes the tier as its lowercase name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a lowercase tier name.
func (t *Type) UnmarshalText(text []byte) error {
	for _, candidate := range AllTypes {
		if candidate.String() == string(text) {
			*t = candidate
			return nil
		}
	}
	return &ErrUnknownType{Name: string(text)}
}

func (t Type) String() string {
	switch t {
	case Pioneer:
		return "pioneer"
	case Settler:
		return "settler"
	case Technician:
		return "technician"
	case Engineer:
		return "engineer"
	case Scientist:
		return "scientist"
	}
	return "unknown"
}

// Element is the derived per-tier workforce state of one plan: demand
// from production buildings, housing capacity from infrastructure and
// the resulting satisfaction under the configured luxury provision.
type Element struct {
	Type       Type
	Required   float64
	Capacity   float64
	Left       float64
	Lux1       bool
	Lux2       bool
	Efficiency float64
}

// Record holds one Element per workforce tier, indexed by Type.
type Record [numTypes]Element

// Satisfaction contribution constants. The base and luxury increments
// are fixed; the capacity ratio contributes up to 0.7.
const (
	satisfactionBase  = 0.02
	satisfactionLux1  = 0.125
	satisfactionLux2  = 0.175
	satisfactionRatio = 0.7
)

// Satisfaction computes a tier's efficiency from housing capacity,
// required headcount and luxury provision. A tier with no requirement
// has efficiency 0. The curve grows monotonically with the
// capacity/required ratio and saturates at 1.0.
func Satisfaction(capacity float64, required float64, lux1 bool, lux2 bool) float64 {
	if required == 0 {
		return 0
	}

	ratio := capacity / required
	if ratio > 1 {
		ratio = 1
	}

	satisfaction := satisfactionBase + satisfactionRatio*ratio
	if lux1 {
		satisfaction += satisfactionLux1
	}
	if lux2 {
		satisfaction += satisfactionLux2
	}

	if satisfaction > 1 {
		return 1
	}
	return satisfaction
}
