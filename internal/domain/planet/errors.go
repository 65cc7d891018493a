package planet

import "fmt"

// ErrPlanetNotFound indicates a planet natural id is missing from the
// reference data.
type ErrPlanetNotFound struct {
	NaturalID string
}

func (e *ErrPlanetNotFound) Error() string {
	return fmt.Sprintf("planet %s not available", e.NaturalID)
}
