package planet

import (
	"math"

	"github.com/jplacht/prunplanner-go/internal/domain/material"
)

// ResourceType classifies a natural planetary resource deposit.
type ResourceType string

const (
	Mineral ResourceType = "MINERAL"
	Liquid  ResourceType = "LIQUID"
	Gaseous ResourceType = "GASEOUS"
)

// Resource is one extractable deposit of a planet.
type Resource struct {
	MaterialTicker  string
	ResourceType    ResourceType
	DailyExtraction float64
}

// Planet is static reference data about a planet's environment and
// resource deposits.
type Planet struct {
	NaturalID   string
	Name        string
	Surface     bool // true for rocky, false for gaseous surfaces
	Gravity     float64
	Pressure    float64
	Temperature float64
	Resources   []Resource
}

// Environmental boundaries dividing low/normal/high conditions.
const (
	GravityLow      = 0.25
	GravityHigh     = 2.5
	PressureLow     = 0.25
	PressureHigh    = 2.0
	TemperatureLow  = -25.0
	TemperatureHigh = 75.0
)

type boundary int

const (
	boundaryNormal boundary = iota
	boundaryLow
	boundaryHigh
)

func classify(value float64, low float64, high float64) boundary {
	if value < low {
		return boundaryLow
	}
	if value > high {
		return boundaryHigh
	}
	return boundaryNormal
}

// SpecialConstructionMaterials returns the environmental surcharge
// materials a building of the given area needs on this planet, on top
// of its own construction bill.
func (p *Planet) SpecialConstructionMaterials(areaCost float64) []material.IOMinimal {
	additions := []material.IOMinimal{}

	if p.Surface {
		additions = append(additions, material.IOMinimal{Ticker: "MCG", Input: areaCost * 4})
	} else {
		additions = append(additions, material.IOMinimal{Ticker: "AEF", Input: math.Ceil(areaCost / 3)})
	}

	switch classify(p.Gravity, GravityLow, GravityHigh) {
	case boundaryLow:
		additions = append(additions, material.IOMinimal{Ticker: "MGC", Input: 1})
	case boundaryHigh:
		additions = append(additions, material.IOMinimal{Ticker: "BL", Input: 1})
	}

	switch classify(p.Pressure, PressureLow, PressureHigh) {
	case boundaryLow:
		additions = append(additions, material.IOMinimal{Ticker: "SEA", Input: areaCost})
	case boundaryHigh:
		additions = append(additions, material.IOMinimal{Ticker: "HSE", Input: 1})
	}

	switch classify(p.Temperature, TemperatureLow, TemperatureHigh) {
	case boundaryLow:
		additions = append(additions, material.IOMinimal{Ticker: "INS", Input: areaCost * 10})
	case boundaryHigh:
		additions = append(additions, material.IOMinimal{Ticker: "TSH", Input: 1})
	}

	return additions
}
