package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/domain/material"
)

// MaterialRepositoryGORM implements the material catalogue using GORM
type MaterialRepositoryGORM struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new GORM-based material repository
func NewMaterialRepository(db *gorm.DB) *MaterialRepositoryGORM {
	return &MaterialRepositoryGORM{db: db}
}

// FindByTicker retrieves one material
func (r *MaterialRepositoryGORM) FindByTicker(ctx context.Context, ticker string) (*material.Material, error) {
	var model MaterialModel
	err := r.db.WithContext(ctx).First(&model, "ticker = ?", ticker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &material.ErrMaterialNotFound{Ticker: ticker}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get material %s: %w", ticker, err)
	}

	return materialToDomain(&model), nil
}

// FindAll retrieves the complete material catalogue
func (r *MaterialRepositoryGORM) FindAll(ctx context.Context) ([]*material.Material, error) {
	var models []MaterialModel
	err := r.db.WithContext(ctx).Order("ticker").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*material.Material, len(models))
	for i := range models {
		materials[i] = materialToDomain(&models[i])
	}
	return materials, nil
}

func materialToDomain(model *MaterialModel) *material.Material {
	return &material.Material{
		Ticker:   model.Ticker,
		Name:     model.Name,
		Category: model.Category,
		Weight:   model.Weight,
		Volume:   model.Volume,
	}
}
