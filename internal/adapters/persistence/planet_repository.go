package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/domain/planet"
)

// PlanetRepositoryGORM implements the planet store using GORM
type PlanetRepositoryGORM struct {
	db *gorm.DB
}

// NewPlanetRepository creates a new GORM-based planet repository
func NewPlanetRepository(db *gorm.DB) *PlanetRepositoryGORM {
	return &PlanetRepositoryGORM{db: db}
}

// FindByNaturalID retrieves one planet with its resource deposits
func (r *PlanetRepositoryGORM) FindByNaturalID(ctx context.Context, naturalID string) (*planet.Planet, error) {
	var model PlanetModel
	err := r.db.WithContext(ctx).
		Preload("Resources").
		First(&model, "natural_id = ?", naturalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &planet.ErrPlanetNotFound{NaturalID: naturalID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get planet %s: %w", naturalID, err)
	}

	p := &planet.Planet{
		NaturalID:   model.NaturalID,
		Name:        model.Name,
		Surface:     model.Surface,
		Gravity:     model.Gravity,
		Pressure:    model.Pressure,
		Temperature: model.Temperature,
	}

	p.Resources = make([]planet.Resource, len(model.Resources))
	for i, resource := range model.Resources {
		p.Resources[i] = planet.Resource{
			MaterialTicker:  resource.MaterialTicker,
			ResourceType:    planet.ResourceType(resource.ResourceType),
			DailyExtraction: resource.DailyExtraction,
		}
	}

	return p, nil
}
