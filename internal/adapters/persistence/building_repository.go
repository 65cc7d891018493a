package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
)

// BuildingRepositoryGORM implements the building catalogue using GORM
type BuildingRepositoryGORM struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new GORM-based building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepositoryGORM {
	return &BuildingRepositoryGORM{db: db}
}

// FindByTicker retrieves one building with its construction bill
func (r *BuildingRepositoryGORM) FindByTicker(ctx context.Context, ticker string) (*building.Building, error) {
	var model BuildingModel
	err := r.db.WithContext(ctx).
		Preload("Costs").
		First(&model, "ticker = ?", ticker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &building.ErrBuildingNotFound{Ticker: ticker}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get building %s: %w", ticker, err)
	}

	return buildingToDomain(&model), nil
}

// FindAll retrieves the complete building catalogue
func (r *BuildingRepositoryGORM) FindAll(ctx context.Context) ([]*building.Building, error) {
	var models []BuildingModel
	err := r.db.WithContext(ctx).
		Preload("Costs").
		Order("ticker").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	buildings := make([]*building.Building, len(models))
	for i := range models {
		buildings[i] = buildingToDomain(&models[i])
	}
	return buildings, nil
}

func buildingToDomain(model *BuildingModel) *building.Building {
	b := &building.Building{
		Ticker:      model.Ticker,
		Name:        model.Name,
		Type:        model.Type,
		AreaCost:    model.AreaCost,
		Pioneers:    model.Pioneers,
		Settlers:    model.Settlers,
		Technicians: model.Technicians,
		Engineers:   model.Engineers,
		Scientists:  model.Scientists,
		Expertise:   building.Expertise(model.Expertise),
	}

	if model.HabPioneers > 0 || model.HabSettlers > 0 || model.HabTechnicians > 0 ||
		model.HabEngineers > 0 || model.HabScientists > 0 {
		b.Habitation = &building.Habitation{
			Pioneer:    model.HabPioneers,
			Settler:    model.HabSettlers,
			Technician: model.HabTechnicians,
			Engineer:   model.HabEngineers,
			Scientist:  model.HabScientists,
		}
	}

	b.Costs = make([]building.ConstructionCost, len(model.Costs))
	for i, cost := range model.Costs {
		b.Costs[i] = building.ConstructionCost{
			MaterialTicker: cost.MaterialTicker,
			Amount:         cost.Amount,
		}
	}

	return b
}
