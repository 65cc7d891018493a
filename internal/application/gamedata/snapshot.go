package gamedata

import (
	"math"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/planet"
)

// Snapshot is an immutable reference-data view for one calculation run.
// All lookups are plain map reads; the engine never touches a
// repository mid-calculation, so concurrent calculations sharing a
// snapshot are safe and repeated runs over the same snapshot are
// bit-identical.
type Snapshot struct {
	Planet *planet.Planet

	buildings map[string]*building.Building
	recipes   map[string][]building.Recipe
	materials map[string]*material.Material
	quotes    map[string]*exchange.Quote
}

// Building returns a building by ticker.
func (s *Snapshot) Building(ticker string) (*building.Building, error) {
	if b, ok := s.buildings[ticker]; ok {
		return b, nil
	}
	return nil, &building.ErrBuildingNotFound{Ticker: ticker}
}

// Material returns a catalogue material by ticker. Implements
// material.Catalogue.
func (s *Snapshot) Material(ticker string) (*material.Material, error) {
	if m, ok := s.materials[ticker]; ok {
		return m, nil
	}
	return nil, &material.ErrMaterialNotFound{Ticker: ticker}
}

// Quote returns an exchange quote by composite code, or
// exchange.ErrQuoteNotFound when the snapshot carries none.
func (s *Snapshot) Quote(compositeCode string) (*exchange.Quote, error) {
	if q, ok := s.quotes[compositeCode]; ok {
		return q, nil
	}
	return nil, exchange.ErrQuoteNotFound
}

// resourceBuildingTypes maps extraction building tickers to the deposit
// type they can work.
var resourceBuildingTypes = map[string]planet.ResourceType{
	"EXT": planet.Mineral,
	"RIG": planet.Liquid,
	"COL": planet.Gaseous,
}

// extractionFactor converts a deposit's daily extraction figure into
// the effective per-extractor daily yield.
func extractionFactor(rt planet.ResourceType) float64 {
	if rt == planet.Gaseous {
		return 0.6
	}
	return 0.7
}

// BuildingRecipes returns the recipe options a building can host on the
// snapshot's planet. Extraction buildings synthesize one recipe per
// matching planetary deposit; their yield is rounded up to whole units
// with the cycle time stretched to keep the daily rate exact.
func (s *Snapshot) BuildingRecipes(buildingTicker string) ([]building.Recipe, error) {
	if resourceType, ok := resourceBuildingTypes[buildingTicker]; ok {
		recipes := []building.Recipe{}
		if s.Planet == nil {
			return recipes, nil
		}

		for _, res := range s.Planet.Resources {
			if res.ResourceType != resourceType {
				continue
			}

			dailyYield := res.DailyExtraction * extractionFactor(resourceType)
			if dailyYield <= 0 {
				continue
			}
			amount := math.Ceil(dailyYield)

			recipes = append(recipes, building.Recipe{
				RecipeID:       buildingTicker + "#" + res.MaterialTicker,
				BuildingTicker: buildingTicker,
				RecipeName:     buildingTicker,
				TimeMs:         amount / dailyYield * building.MSPerDay,
				Outputs: []building.RecipeMaterial{
					{Ticker: res.MaterialTicker, Amount: amount},
				},
			})
		}

		return recipes, nil
	}

	recipes, ok := s.recipes[buildingTicker]
	if !ok {
		return nil, &building.ErrBuildingNotFound{Ticker: buildingTicker}
	}
	return recipes, nil
}
