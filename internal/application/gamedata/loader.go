package gamedata

import (
	"context"
	"fmt"
	"sync"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/ports"
)

// Loader assembles reference-data snapshots from the repositories.
// Lookups between categories have no ordering dependency, so the bulk
// reads fan out concurrently.
type Loader struct {
	buildings ports.BuildingRepository
	recipes   ports.RecipeRepository
	materials ports.MaterialRepository
	exchanges ports.ExchangeRepository
	planets   ports.PlanetRepository
}

// NewLoader creates a snapshot loader over the given repositories.
func NewLoader(
	buildings ports.BuildingRepository,
	recipes ports.RecipeRepository,
	materials ports.MaterialRepository,
	exchanges ports.ExchangeRepository,
	planets ports.PlanetRepository,
) *Loader {
	return &Loader{
		buildings: buildings,
		recipes:   recipes,
		materials: materials,
		exchanges: exchanges,
		planets:   planets,
	}
}

// Load builds a snapshot for one planet covering the given production
// building tickers plus every infrastructure building and the core
// module. Materials and exchange quotes are loaded in full; both are
// needed across the whole calculation.
func (l *Loader) Load(ctx context.Context, planetID string, buildingTickers []string) (*Snapshot, error) {
	snap := &Snapshot{
		buildings: make(map[string]*building.Building),
		recipes:   make(map[string][]building.Recipe),
		materials: make(map[string]*material.Material),
		quotes:    make(map[string]*exchange.Quote),
	}

	var wg sync.WaitGroup
	var planetErr, materialErr, quoteErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Planet, planetErr = l.planets.FindByNaturalID(ctx, planetID)
	}()
	go func() {
		defer wg.Done()
		materials, err := l.materials.FindAll(ctx)
		if err != nil {
			materialErr = err
			return
		}
		for _, m := range materials {
			snap.materials[m.Ticker] = m
		}
	}()
	go func() {
		defer wg.Done()
		quotes, err := l.exchanges.FindAll(ctx)
		if err != nil {
			quoteErr = err
			return
		}
		for _, q := range quotes {
			snap.quotes[q.TickerID] = q
		}
	}()
	wg.Wait()

	for _, err := range []error{planetErr, materialErr, quoteErr} {
		if err != nil {
			return nil, fmt.Errorf("failed to load reference data: %w", err)
		}
	}

	wanted := make([]string, 0, len(buildingTickers)+len(building.AllInfrastructure)+1)
	wanted = append(wanted, buildingTickers...)
	for _, inf := range building.AllInfrastructure {
		wanted = append(wanted, string(inf))
	}
	wanted = append(wanted, building.CoreModuleTicker)

	for _, ticker := range wanted {
		if _, ok := snap.buildings[ticker]; ok {
			continue
		}

		b, err := l.buildings.FindByTicker(ctx, ticker)
		if err != nil {
			return nil, err
		}
		snap.buildings[ticker] = b

		if l.needsRecipes(ticker, b) {
			recipes, err := l.recipes.FindByBuilding(ctx, ticker)
			if err != nil {
				return nil, err
			}
			snap.recipes[ticker] = recipes
		}
	}

	return snap, nil
}

// LoadAll builds a snapshot containing the complete building and recipe
// catalogues, for bulk scans across every production building.
func (l *Loader) LoadAll(ctx context.Context, planetID string) (*Snapshot, error) {
	snap, err := l.Load(ctx, planetID, nil)
	if err != nil {
		return nil, err
	}

	all, err := l.buildings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load building catalogue: %w", err)
	}
	for _, b := range all {
		if _, ok := snap.buildings[b.Ticker]; ok {
			continue
		}
		snap.buildings[b.Ticker] = b
	}

	recipes, err := l.recipes.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalogue: %w", err)
	}
	for _, r := range recipes {
		snap.recipes[r.BuildingTicker] = append(snap.recipes[r.BuildingTicker], r)
	}

	return snap, nil
}

// needsRecipes reports whether a building hosts catalogue recipes.
// Extraction recipes are synthesized from planet deposits instead, and
// habitation/storage/core buildings host none.
func (l *Loader) needsRecipes(ticker string, b *building.Building) bool {
	if _, extraction := resourceBuildingTypes[ticker]; extraction {
		return false
	}
	if building.IsInfrastructureTicker(ticker) || ticker == building.CoreModuleTicker {
		return false
	}
	return b.Habitation == nil
}
