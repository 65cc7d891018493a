package material

// Material is a reference catalogue entry describing the physical
// attributes of one commodity unit.
type Material struct {
	Ticker   string
	Name     string
	Category string
	Weight   float64 // tons per unit
	Volume   float64 // cubic meters per unit
}

// Catalogue provides read access to the material reference data.
// Implementations must be safe for concurrent reads.
type Catalogue interface {
	Material(ticker string) (*Material, error)
}
