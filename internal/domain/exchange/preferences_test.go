package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
)

func TestParseExchangeCode(t *testing.T) {
	tests := []struct {
		name          string
		preference    string
		expectedCode  string
		expectedField exchange.QuoteField
	}{
		{"universe series", "PP30D_UNIVERSE", "PP30D_UNIVERSE", exchange.FieldPriceAverage},
		{"seven day series", "PP7D_AI1", "PP7D_AI1", exchange.FieldPriceAverage},
		{"universe suffix", "XYZ_UNIVERSE", "XYZ_UNIVERSE", exchange.FieldPriceAverage},
		{"location buy side", "AI1_BUY", "AI1", exchange.FieldAsk},
		{"location sell side", "NC2_SELL", "NC2", exchange.FieldBid},
		{"location average", "IC1_AVG", "IC1", exchange.FieldPriceAverage},
		{"unknown location falls back", "ZZ9_BUY", "PP30D_UNIVERSE", exchange.FieldPriceAverage},
		{"unknown suffix falls back", "AI1_MID", "PP30D_UNIVERSE", exchange.FieldPriceAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, field, err := exchange.ParseExchangeCode(tt.preference)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedField, field)
		})
	}
}

func TestParseExchangeCode_Malformed(t *testing.T) {
	for _, preference := range []string{"", "AI1", "AI1_BUY_NOW"} {
		code, field, err := exchange.ParseExchangeCode(preference)

		// Malformed codes still resolve, so a bad preference never
		// zeroes out a whole calculation.
		assert.Equal(t, exchange.UniverseAverageCode, code)
		assert.Equal(t, exchange.FieldPriceAverage, field)

		var malformed *exchange.ErrMalformedExchangeCode
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, preference, malformed.Code)
	}
}

func TestDirectionMatches(t *testing.T) {
	assert.True(t, exchange.Buy.Matches(exchange.Buy))
	assert.True(t, exchange.Both.Matches(exchange.Buy))
	assert.True(t, exchange.Both.Matches(exchange.Sell))
	assert.False(t, exchange.Buy.Matches(exchange.Sell))
	assert.False(t, exchange.Sell.Matches(exchange.Buy))
}

func TestQuoteValue(t *testing.T) {
	quote := exchange.Quote{Ask: 110, Bid: 90, PriceAverage: 100}

	assert.Equal(t, 110.0, quote.Value(exchange.FieldAsk))
	assert.Equal(t, 90.0, quote.Value(exchange.FieldBid))
	assert.Equal(t, 100.0, quote.Value(exchange.FieldPriceAverage))
}

func TestCompositeCode(t *testing.T) {
	assert.Equal(t, "RAT.AI1", exchange.CompositeCode("RAT", "AI1"))
}
