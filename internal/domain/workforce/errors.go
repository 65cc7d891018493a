package workforce

import "fmt"

// ErrUnknownType indicates a workforce tier name outside the five
// known tiers.
type ErrUnknownType struct {
	Name string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown workforce type %q", e.Name)
}
