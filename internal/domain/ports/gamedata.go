package ports

import (
	"context"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/planet"
)

// BuildingRepository serves the static building catalogue.
type BuildingRepository interface {
	// FindByTicker retrieves one building; returns
	// *building.ErrBuildingNotFound for unknown tickers.
	FindByTicker(ctx context.Context, ticker string) (*building.Building, error)

	// FindAll retrieves the complete building catalogue.
	FindAll(ctx context.Context) ([]*building.Building, error)
}

// RecipeRepository serves the static recipe catalogue.
type RecipeRepository interface {
	// FindByBuilding retrieves all recipes hosted by a building type.
	FindByBuilding(ctx context.Context, buildingTicker string) ([]building.Recipe, error)

	// FindAll retrieves the complete recipe catalogue.
	FindAll(ctx context.Context) ([]building.Recipe, error)
}

// MaterialRepository serves the material catalogue.
type MaterialRepository interface {
	// FindByTicker retrieves one material; returns
	// *material.ErrMaterialNotFound for unknown tickers.
	FindByTicker(ctx context.Context, ticker string) (*material.Material, error)

	// FindAll retrieves the complete material catalogue.
	FindAll(ctx context.Context) ([]*material.Material, error)
}

// ExchangeRepository serves the periodically refreshed exchange quotes.
type ExchangeRepository interface {
	// FindByCode retrieves a quote by composite code (e.g. "RAT.AI1");
	// returns exchange.ErrQuoteNotFound when absent, which resolvers
	// treat as non-fatal.
	FindByCode(ctx context.Context, compositeCode string) (*exchange.Quote, error)

	// FindAll retrieves the full quote snapshot.
	FindAll(ctx context.Context) ([]*exchange.Quote, error)
}

// PlanetRepository serves planet environment and resource data.
type PlanetRepository interface {
	// FindByNaturalID retrieves one planet; returns
	// *planet.ErrPlanetNotFound for unknown ids.
	FindByNaturalID(ctx context.Context, naturalID string) (*planet.Planet, error)
}
