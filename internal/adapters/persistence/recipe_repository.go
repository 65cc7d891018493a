package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
)

// RecipeRepositoryGORM implements the recipe catalogue using GORM
type RecipeRepositoryGORM struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-based recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepositoryGORM {
	return &RecipeRepositoryGORM{db: db}
}

// FindByBuilding retrieves all recipes hosted by a building type
func (r *RecipeRepositoryGORM) FindByBuilding(ctx context.Context, buildingTicker string) ([]building.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Where("building_ticker = ?", buildingTicker).
		Order("recipe_id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recipes for %s: %w", buildingTicker, err)
	}

	return recipesToDomain(models), nil
}

// FindAll retrieves the complete recipe catalogue
func (r *RecipeRepositoryGORM) FindAll(ctx context.Context) ([]building.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Materials").
		Order("recipe_id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipesToDomain(models), nil
}

func recipesToDomain(models []RecipeModel) []building.Recipe {
	recipes := make([]building.Recipe, len(models))
	for i, model := range models {
		recipe := building.Recipe{
			RecipeID:       model.RecipeID,
			BuildingTicker: model.BuildingTicker,
			RecipeName:     model.RecipeName,
			TimeMs:         model.TimeMs,
		}
		for _, mat := range model.Materials {
			entry := building.RecipeMaterial{Ticker: mat.Ticker, Amount: mat.Amount}
			if mat.Side == "input" {
				recipe.Inputs = append(recipe.Inputs, entry)
			} else {
				recipe.Outputs = append(recipe.Outputs, entry)
			}
		}
		recipes[i] = recipe
	}
	return recipes
}
