package material

import "fmt"

// ErrMaterialNotFound indicates a material ticker is missing from the
// reference catalogue. This is fatal to the calculation referencing it.
type ErrMaterialNotFound struct {
	Ticker string
}

func (e *ErrMaterialNotFound) Error() string {
	return fmt.Sprintf("material %s not available", e.Ticker)
}
