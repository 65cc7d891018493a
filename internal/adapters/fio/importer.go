// Package fio imports FIO game-data exports into the local database.
// FIO is the community API serving Prosperous Universe reference data;
// its JSON exports are the canonical source for buildings, recipes,
// materials, exchange quotes and planets.
package fio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
)

// Importer decodes FIO JSON exports and upserts them into the schema.
type Importer struct {
	db *gorm.DB
}

// NewImporter creates a new FIO importer over an open database.
func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

type buildingDocument struct {
	Ticker      string  `json:"Ticker"`
	Name        string  `json:"Name"`
	Type        string  `json:"Type"`
	Expertise   string  `json:"Expertise"`
	AreaCost    float64 `json:"AreaCost"`
	Pioneers    float64 `json:"Pioneers"`
	Settlers    float64 `json:"Settlers"`
	Technicians float64 `json:"Technicians"`
	Engineers   float64 `json:"Engineers"`
	Scientists  float64 `json:"Scientists"`
	Habitation  *struct {
		Pioneers    float64 `json:"Pioneers"`
		Settlers    float64 `json:"Settlers"`
		Technicians float64 `json:"Technicians"`
		Engineers   float64 `json:"Engineers"`
		Scientists  float64 `json:"Scientists"`
	} `json:"Habitation"`
	BuildingCosts []struct {
		CommodityTicker string  `json:"CommodityTicker"`
		Amount          float64 `json:"Amount"`
	} `json:"BuildingCosts"`
}

// ImportBuildings replaces the building catalogue with the decoded
// export.
func (i *Importer) ImportBuildings(ctx context.Context, r io.Reader) (int, error) {
	var documents []buildingDocument
	if err := json.NewDecoder(r).Decode(&documents); err != nil {
		return 0, fmt.Errorf("decoding building export: %w", err)
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range documents {
			model := persistence.BuildingModel{
				Ticker:      doc.Ticker,
				Name:        doc.Name,
				Type:        doc.Type,
				AreaCost:    doc.AreaCost,
				Pioneers:    doc.Pioneers,
				Settlers:    doc.Settlers,
				Technicians: doc.Technicians,
				Engineers:   doc.Engineers,
				Scientists:  doc.Scientists,
				Expertise:   doc.Expertise,
			}
			if doc.Habitation != nil {
				model.HabPioneers = doc.Habitation.Pioneers
				model.HabSettlers = doc.Habitation.Settlers
				model.HabTechnicians = doc.Habitation.Technicians
				model.HabEngineers = doc.Habitation.Engineers
				model.HabScientists = doc.Habitation.Scientists
			}

			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("upserting building %s: %w", doc.Ticker, err)
			}

			if err := tx.Where("building_ticker = ?", doc.Ticker).
				Delete(&persistence.BuildingCostModel{}).Error; err != nil {
				return fmt.Errorf("clearing costs of %s: %w", doc.Ticker, err)
			}
			for _, cost := range doc.BuildingCosts {
				costModel := persistence.BuildingCostModel{
					BuildingTicker: doc.Ticker,
					MaterialTicker: cost.CommodityTicker,
					Amount:         cost.Amount,
				}
				if err := tx.Create(&costModel).Error; err != nil {
					return fmt.Errorf("inserting cost of %s: %w", doc.Ticker, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(documents), nil
}

type recipeDocument struct {
	RecipeID       string  `json:"RecipeId"`
	BuildingTicker string  `json:"BuildingTicker"`
	RecipeName     string  `json:"RecipeName"`
	TimeMs         float64 `json:"TimeMs"`
	Inputs         []struct {
		Ticker string  `json:"Ticker"`
		Amount float64 `json:"Amount"`
	} `json:"Inputs"`
	Outputs []struct {
		Ticker string  `json:"Ticker"`
		Amount float64 `json:"Amount"`
	} `json:"Outputs"`
}

// ImportRecipes replaces the recipe catalogue with the decoded export.
func (i *Importer) ImportRecipes(ctx context.Context, r io.Reader) (int, error) {
	var documents []recipeDocument
	if err := json.NewDecoder(r).Decode(&documents); err != nil {
		return 0, fmt.Errorf("decoding recipe export: %w", err)
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range documents {
			model := persistence.RecipeModel{
				RecipeID:       doc.RecipeID,
				BuildingTicker: doc.BuildingTicker,
				RecipeName:     doc.RecipeName,
				TimeMs:         doc.TimeMs,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("upserting recipe %s: %w", doc.RecipeID, err)
			}

			if err := tx.Where("recipe_id = ?", doc.RecipeID).
				Delete(&persistence.RecipeMaterialModel{}).Error; err != nil {
				return fmt.Errorf("clearing materials of %s: %w", doc.RecipeID, err)
			}
			for _, input := range doc.Inputs {
				entry := persistence.RecipeMaterialModel{
					RecipeID: doc.RecipeID,
					Ticker:   input.Ticker,
					Amount:   input.Amount,
					Side:     "input",
				}
				if err := tx.Create(&entry).Error; err != nil {
					return fmt.Errorf("inserting input of %s: %w", doc.RecipeID, err)
				}
			}
			for _, output := range doc.Outputs {
				entry := persistence.RecipeMaterialModel{
					RecipeID: doc.RecipeID,
					Ticker:   output.Ticker,
					Amount:   output.Amount,
					Side:     "output",
				}
				if err := tx.Create(&entry).Error; err != nil {
					return fmt.Errorf("inserting output of %s: %w", doc.RecipeID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(documents), nil
}

type materialDocument struct {
	Ticker       string  `json:"Ticker"`
	Name         string  `json:"Name"`
	CategoryName string  `json:"CategoryName"`
	Weight       float64 `json:"Weight"`
	Volume       float64 `json:"Volume"`
}

// ImportMaterials replaces the material catalogue with the decoded
// export.
func (i *Importer) ImportMaterials(ctx context.Context, r io.Reader) (int, error) {
	var documents []materialDocument
	if err := json.NewDecoder(r).Decode(&documents); err != nil {
		return 0, fmt.Errorf("decoding material export: %w", err)
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range documents {
			model := persistence.MaterialModel{
				Ticker:   doc.Ticker,
				Name:     doc.Name,
				Category: doc.CategoryName,
				Weight:   doc.Weight,
				Volume:   doc.Volume,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("upserting material %s: %w", doc.Ticker, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(documents), nil
}

type exchangeDocument struct {
	ExchangeTicker string  `json:"ExchangeTicker"` // e.g. "RAT.AI1"
	MaterialTicker string  `json:"MaterialTicker"`
	ExchangeCode   string  `json:"ExchangeCode"`
	Ask            float64 `json:"Ask"`
	Bid            float64 `json:"Bid"`
	PriceAverage   float64 `json:"PriceAverage"`
	Supply         float64 `json:"Supply"`
	Demand         float64 `json:"Demand"`
}

// ImportExchange replaces the exchange quote snapshot with the decoded
// export.
func (i *Importer) ImportExchange(ctx context.Context, r io.Reader) (int, error) {
	var documents []exchangeDocument
	if err := json.NewDecoder(r).Decode(&documents); err != nil {
		return 0, fmt.Errorf("decoding exchange export: %w", err)
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range documents {
			model := persistence.ExchangeModel{
				TickerID:       doc.ExchangeTicker,
				MaterialTicker: doc.MaterialTicker,
				ExchangeCode:   doc.ExchangeCode,
				Ask:            doc.Ask,
				Bid:            doc.Bid,
				PriceAverage:   doc.PriceAverage,
				Supply:         doc.Supply,
				Demand:         doc.Demand,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("upserting quote %s: %w", doc.ExchangeTicker, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(documents), nil
}

type planetDocument struct {
	PlanetNaturalID string  `json:"PlanetNaturalId"`
	PlanetName      string  `json:"PlanetName"`
	Surface         bool    `json:"Surface"`
	Gravity         float64 `json:"Gravity"`
	Pressure        float64 `json:"Pressure"`
	Temperature     float64 `json:"Temperature"`
	Resources       []struct {
		MaterialTicker  string  `json:"MaterialTicker"`
		ResourceType    string  `json:"ResourceType"`
		DailyExtraction float64 `json:"DailyExtraction"`
	} `json:"Resources"`
}

// ImportPlanets replaces the planet store with the decoded export.
func (i *Importer) ImportPlanets(ctx context.Context, r io.Reader) (int, error) {
	var documents []planetDocument
	if err := json.NewDecoder(r).Decode(&documents); err != nil {
		return 0, fmt.Errorf("decoding planet export: %w", err)
	}

	err := i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range documents {
			model := persistence.PlanetModel{
				NaturalID:   doc.PlanetNaturalID,
				Name:        doc.PlanetName,
				Surface:     doc.Surface,
				Gravity:     doc.Gravity,
				Pressure:    doc.Pressure,
				Temperature: doc.Temperature,
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("upserting planet %s: %w", doc.PlanetNaturalID, err)
			}

			if err := tx.Where("planet_natural_id = ?", doc.PlanetNaturalID).
				Delete(&persistence.PlanetResourceModel{}).Error; err != nil {
				return fmt.Errorf("clearing resources of %s: %w", doc.PlanetNaturalID, err)
			}
			for _, resource := range doc.Resources {
				entry := persistence.PlanetResourceModel{
					PlanetNaturalID: doc.PlanetNaturalID,
					MaterialTicker:  resource.MaterialTicker,
					ResourceType:    resource.ResourceType,
					DailyExtraction: resource.DailyExtraction,
				}
				if err := tx.Create(&entry).Error; err != nil {
					return fmt.Errorf("inserting resource of %s: %w", doc.PlanetNaturalID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(documents), nil
}
