package plan

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// ActiveRecipe queues a number of batches of one recipe on a building
// instance. The recipe must belong to the instance's building type.
type ActiveRecipe struct {
	RecipeID string  `json:"recipeid" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

// BuildingInstance places a number of identical production buildings
// with a shared recipe queue.
type BuildingInstance struct {
	Ticker        string         `json:"name" validate:"required"`
	Amount        int            `json:"amount" validate:"gte=0"`
	ActiveRecipes []ActiveRecipe `json:"active_recipes" validate:"dive"`
}

// InfrastructureInstance places habitation or storage buildings.
type InfrastructureInstance struct {
	Type   building.InfrastructureType `json:"building" validate:"required"`
	Amount int                         `json:"amount" validate:"gte=0"`
}

// ExpertAllocation assigns experts to one expertise category.
type ExpertAllocation struct {
	Type   building.Expertise `json:"type" validate:"required"`
	Amount int                `json:"amount" validate:"gte=0,lte=5"`
}

// WorkforceLuxury configures luxury provision for one workforce tier.
type WorkforceLuxury struct {
	Type workforce.Type `json:"type"`
	Lux1 bool           `json:"lux1"`
	Lux2 bool           `json:"lux2"`
}

// Plan is one planet configuration: the buildings, infrastructure,
// experts and workforce settings whose daily economics the calculation
// engine evaluates. Plans own their data exclusively; all calculation
// results are derived and never stored back.
type Plan struct {
	UUID           uuid.UUID                `json:"uuid"`
	Name           string                   `json:"name"`
	PlanetID       string                   `json:"planetid" validate:"required"`
	Permits        int                      `json:"permits" validate:"gte=0"`
	CorpHQ         bool                     `json:"corphq"`
	COGC           building.COGCProgram     `json:"cogc"`
	Buildings      []BuildingInstance       `json:"buildings" validate:"dive"`
	Infrastructure []InfrastructureInstance `json:"infrastructure" validate:"dive"`
	Experts        []ExpertAllocation       `json:"experts" validate:"dive"`
	Workforce      []WorkforceLuxury        `json:"workforce"`
}

var validate = validator.New()

// Validate checks the structural integrity of the configuration.
// Reference integrity (unknown tickers, foreign recipes) is verified
// against the game-data snapshot during calculation.
func (p *Plan) Validate() error {
	return validate.Struct(p)
}

// LuxurySetting returns the configured luxury flags for a tier. Tiers
// without an explicit setting default to full luxury provision.
func (p *Plan) LuxurySetting(t workforce.Type) (bool, bool) {
	for _, w := range p.Workforce {
		if w.Type == t {
			return w.Lux1, w.Lux2
		}
	}
	return true, true
}

// ExpertAmount returns the allocated expert count for an expertise.
func (p *Plan) ExpertAmount(e building.Expertise) int {
	for _, alloc := range p.Experts {
		if alloc.Type == e {
			return alloc.Amount
		}
	}
	return 0
}

// InfrastructureAmount returns the placed count of one infrastructure
// type.
func (p *Plan) InfrastructureAmount(t building.InfrastructureType) int {
	for _, inf := range p.Infrastructure {
		if inf.Type == t {
			return inf.Amount
		}
	}
	return 0
}
