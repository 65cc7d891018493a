package pricing

import (
	"errors"

	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
)

// QuoteSource provides exchange quotes by composite code. Absence is
// signalled with exchange.ErrQuoteNotFound and is never fatal here.
type QuoteSource interface {
	Quote(compositeCode string) (*exchange.Quote, error)
}

// Resolver resolves material unit prices against a user preference
// hierarchy with a universe-average fallback:
//
//  1. planet ticker preference (this planet, this material)
//  2. empire ticker preference (this material, any planet)
//  3. planet exchange preference (this planet)
//  4. empire exchange preference
//  5. the material's PP30D_UNIVERSE price average, else 0
//
// Without a preference set the resolver always uses tier 5. Each tier
// only matches entries whose direction equals the request or is BOTH.
type Resolver struct {
	quotes   QuoteSource
	cx       *exchange.CXData // nil when no commercial-exchange context is configured
	planetID string
	logger   common.Logger
}

// NewResolver creates a resolver for one planet context. cx may be nil.
func NewResolver(quotes QuoteSource, cx *exchange.CXData, planetID string, logger common.Logger) *Resolver {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Resolver{quotes: quotes, cx: cx, planetID: planetID, logger: logger}
}

// HasPreferences reports whether a commercial-exchange preference set
// is configured.
func (r *Resolver) HasPreferences() bool {
	return r.cx != nil
}

// Price resolves the unit price of a material for one trade direction.
// Missing quote data resolves to 0; the calculation proceeds with that
// approximation.
func (r *Resolver) Price(materialTicker string, direction exchange.Direction) float64 {
	if r.cx == nil {
		return r.universeAverage(materialTicker)
	}

	// planet ticker preference
	for _, tp := range r.cx.TickerPlanets {
		if tp.Planet != r.planetID {
			continue
		}
		for _, pref := range tp.Preferences {
			if pref.Ticker == materialTicker && pref.Type.Matches(direction) {
				return pref.Value
			}
		}
	}

	// empire ticker preference
	for _, pref := range r.cx.TickerEmpire {
		if pref.Ticker == materialTicker && pref.Type.Matches(direction) {
			return pref.Value
		}
	}

	// planet exchange preference
	for _, cp := range r.cx.CXPlanets {
		if cp.Planet != r.planetID {
			continue
		}
		for _, pref := range cp.Preferences {
			if pref.Type.Matches(direction) {
				return r.quoteValue(materialTicker, pref.Exchange)
			}
		}
	}

	// empire exchange preference
	for _, pref := range r.cx.CXEmpire {
		if pref.Type.Matches(direction) {
			return r.quoteValue(materialTicker, pref.Exchange)
		}
	}

	return r.universeAverage(materialTicker)
}

// SumIOValue sums net amount times resolved unit price over a minimal
// flow list. Net importing entries contribute negative value.
func (r *Resolver) SumIOValue(list []material.IOMinimal, direction exchange.Direction) float64 {
	sum := 0.0
	for _, entry := range list {
		sum += r.Price(entry.Ticker, direction) * (entry.Output - entry.Input)
	}
	return sum
}

// EnhanceIOMaterial attaches the monetary value of each entry's daily
// delta. Entries with non-negative delta are valued at the SELL price,
// net imports at the BUY price; this asymmetry is what exposes the
// buy/sell spread in the profit figures.
func (r *Resolver) EnhanceIOMaterial(list []material.IOMaterial) []material.IO {
	result := make([]material.IO, 0, len(list))

	for _, entry := range list {
		direction := exchange.Sell
		if entry.Delta < 0 {
			direction = exchange.Buy
		}

		result = append(result, material.IO{
			IOMaterial: entry,
			Price:      r.Price(entry.Ticker, direction) * entry.Delta,
		})
	}

	return result
}

// quoteValue resolves an exchange preference code against the quote
// source. Malformed codes are logged and fall back to the universe
// average.
func (r *Resolver) quoteValue(materialTicker string, preferenceCode string) float64 {
	code, field, err := exchange.ParseExchangeCode(preferenceCode)
	if err != nil {
		r.logger.Log("warn", "malformed exchange preference code", map[string]interface{}{
			"code":     preferenceCode,
			"material": materialTicker,
		})
	}

	quote, err := r.quotes.Quote(exchange.CompositeCode(materialTicker, code))
	if err != nil {
		if !errors.Is(err, exchange.ErrQuoteNotFound) {
			r.logger.Log("warn", "quote lookup failed", map[string]interface{}{
				"material": materialTicker,
				"code":     code,
				"error":    err.Error(),
			})
		}
		return 0
	}

	return quote.Value(field)
}

func (r *Resolver) universeAverage(materialTicker string) float64 {
	quote, err := r.quotes.Quote(exchange.CompositeCode(materialTicker, exchange.UniverseAverageCode))
	if err != nil {
		return 0
	}
	return quote.PriceAverage
}
