package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

func TestParseDimensions(t *testing.T) {
	d, err := quotation.ParseDimensions("10 x 15 x 30")
	require.NoError(t, err)
	assert.Equal(t, quotation.Dimensions{Height: 10, Width: 15, Length: 30}, d)

	// separadores alternativos aceptados
	d, err = quotation.ParseDimensions("10x15x30")
	require.NoError(t, err)
	assert.Equal(t, 15.0, d.Width)

	_, err = quotation.ParseDimensions("10 x 15")
	assert.Error(t, err, "faltan tokens")

	_, err = quotation.ParseDimensions("10 x 15 x 30 x 5")
	assert.Error(t, err, "tokens de más")

	_, err = quotation.ParseDimensions("10 x quince x 30")
	assert.Error(t, err, "token no numérico")
}

func dims(h, w, l float64) quotation.Dimensions {
	return quotation.Dimensions{Height: h, Width: w, Length: l}
}

func TestDimensionsValid(t *testing.T) {
	cases := []struct {
		name  string
		d     quotation.Dimensions
		valid bool
	}{
		{"caso típico", dims(10, 15, 30), true},
		{"altura bajo el mínimo", dims(0.3, 15, 30), false},
		{"máximos individuales, suma 150", dims(50, 50, 50), true},
		{"límites inclusivos, suma 21.4", dims(0.4, 8, 13), true},
		{"altura sobre el máximo", dims(101, 15, 30), false},
		{"largura bajo el mínimo", dims(10, 7.9, 30), false},
		{"comprimento bajo el mínimo", dims(10, 15, 12.9), false},
		{"suma sobre el máximo", dims(90, 90, 90), false},
		{"suma exacta 200", dims(50, 50, 100), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.d.Valid())
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	_, err := quotation.ValidateDimensions("0.3 x 15 x 30")
	assert.ErrorIs(t, err, domain.ErrRowInvalid, "fuera de límites no pasa en silencio")

	d, err := quotation.ValidateDimensions("0.4 x 8 x 13")
	assert.NoError(t, err)
	assert.Equal(t, "0.4", d.HeightStr())
	assert.Equal(t, "8", d.WidthStr())
	assert.Equal(t, "13", d.LengthStr())
}
