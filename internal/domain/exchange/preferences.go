package exchange

import "strings"

// Direction states which side of a trade a price request or preference
// applies to. A preference with DirectionBoth matches either request.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
	Both Direction = "BOTH"
)

// Matches reports whether a preference direction applies to a request.
// Requests are always Buy or Sell.
func (d Direction) Matches(requested Direction) bool {
	return d == requested || d == Both
}

// TickerPreference fixes the unit price of one material.
type TickerPreference struct {
	Ticker string
	Type   Direction
	Value  float64
}

// ExchangePreference routes price resolution to an exchange code such
// as "IC1_BUY" or "PP30D_UNIVERSE".
type ExchangePreference struct {
	Type     Direction
	Exchange string
}

// PlanetTickerPreferences scopes ticker preferences to one planet.
type PlanetTickerPreferences struct {
	Planet      string
	Preferences []TickerPreference
}

// PlanetExchangePreferences scopes exchange preferences to one planet.
type PlanetExchangePreferences struct {
	Planet      string
	Preferences []ExchangePreference
}

// CXData is a user-configured commercial-exchange preference set. Its
// four tiers are consulted in declaration order: planet ticker, empire
// ticker, planet exchange, empire exchange. The upstream editor
// guarantees a ticker never carries a Both and a directional entry at
// the same time.
type CXData struct {
	Name          string
	TickerPlanets []PlanetTickerPreferences
	TickerEmpire  []TickerPreference
	CXPlanets     []PlanetExchangePreferences
	CXEmpire      []ExchangePreference
}

// known exchange location codes and field suffixes
var (
	exchangeLocations = map[string]bool{"AI1": true, "IC1": true, "CI1": true, "NC1": true, "NC2": true}
	fieldSuffixes     = map[string]QuoteField{"BUY": FieldAsk, "SELL": FieldBid, "AVG": FieldPriceAverage}
)

// ParseExchangeCode splits an exchange preference string into the quote
// code to look up and the quote field to read. Codes already naming a
// price-period series ("PP7D_*", "PP30D_*") or ending in "_UNIVERSE"
// resolve to that series' price average. Unknown but well-formed codes
// fall back to the universe average; malformed strings additionally
// return ErrMalformedExchangeCode so callers can flag the anomaly.
func ParseExchangeCode(preference string) (string, QuoteField, error) {
	parts := strings.Split(preference, "_")

	if len(parts) != 2 {
		return UniverseAverageCode, FieldPriceAverage, &ErrMalformedExchangeCode{Code: preference}
	}

	if parts[1] == "UNIVERSE" || parts[0] == "PP7D" || parts[0] == "PP30D" {
		return preference, FieldPriceAverage, nil
	}

	if exchangeLocations[parts[0]] {
		if field, ok := fieldSuffixes[parts[1]]; ok {
			return parts[0], field, nil
		}
	}

	return UniverseAverageCode, FieldPriceAverage, nil
}
