package exchange

// UniverseAverageCode is the universal fallback exchange code: the
// 30-day universe-wide price average exists for every traded material.
const UniverseAverageCode = "PP30D_UNIVERSE"

// Quote is a periodically refreshed commodity exchange snapshot entry,
// keyed by a composite code such as "RAT.AI1" or "RAT.PP30D_UNIVERSE".
type Quote struct {
	TickerID       string // composite key: <material>.<exchange code>
	MaterialTicker string
	ExchangeCode   string
	Ask            float64
	Bid            float64
	PriceAverage   float64
	Supply         float64
	Demand         float64
}

// QuoteField selects the price field of a Quote a preference resolves to.
type QuoteField int

const (
	FieldPriceAverage QuoteField = iota
	FieldAsk
	FieldBid
)

// Value returns the selected price field of the quote.
func (q *Quote) Value(field QuoteField) float64 {
	switch field {
	case FieldAsk:
		return q.Ask
	case FieldBid:
		return q.Bid
	}
	return q.PriceAverage
}

// CompositeCode builds the composite quote key for a material on an
// exchange code.
func CompositeCode(materialTicker string, exchangeCode string) string {
	return materialTicker + "." + exchangeCode
}
