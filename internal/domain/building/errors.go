package building

import "fmt"

// ErrBuildingNotFound indicates a building ticker is missing from the
// reference catalogue. Fatal to the calculation referencing it.
type ErrBuildingNotFound struct {
	Ticker string
}

func (e *ErrBuildingNotFound) Error() string {
	return fmt.Sprintf("building %s not available", e.Ticker)
}

// ErrRecipeNotFound indicates an active recipe references a recipe id
// the owning building does not host. Fatal to the calculation.
type ErrRecipeNotFound struct {
	BuildingTicker string
	RecipeID       string
}

func (e *ErrRecipeNotFound) Error() string {
	return fmt.Sprintf("recipe %s not available for building %s", e.RecipeID, e.BuildingTicker)
}
