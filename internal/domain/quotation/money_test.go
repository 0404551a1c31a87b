package quotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

func TestParseBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"R$ 23,90", "23.9"},
		{"R$1.234,56", "1234.56"},
		{"1.234.567,89", "1234567.89"},
		{"23.90", "23.9"}, // ya con punto decimal, como VALOR DO PEDIDO
		{"150", "150"},
	}
	for _, tc := range cases {
		d, err := quotation.ParseBRL(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		assert.Equal(t, tc.want, d.String(), "in=%q", tc.in)
	}

	_, err := quotation.ParseBRL("N/A")
	assert.Error(t, err)
	_, err = quotation.ParseBRL("")
	assert.Error(t, err)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 23,90", quotation.FormatBRL(decimal.NewFromFloat(23.9)))
	assert.Equal(t, "R$ 1234,56", quotation.FormatBRL(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "R$ 0,00", quotation.FormatBRL(decimal.Zero))
}

func TestParseFormatRoundTrip(t *testing.T) {
	d, err := quotation.ParseBRL(quotation.FormatBRL(decimal.NewFromFloat(87.45)))
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(87.45)))
}
