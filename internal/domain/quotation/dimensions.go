package quotation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
)

// Límites de embalaje publicados por Correios (cm). Inclusivos en ambos extremos.
const (
	minHeight = 0.4
	maxHeight = 100
	minWidth  = 8
	maxWidth  = 100
	minLength = 13
	maxLength = 100
	minSum    = 21.4
	maxSum    = 200
)

// Dimensions dimensiones de la caja en centímetros.
type Dimensions struct {
	Height float64
	Width  float64
	Length float64
}

// ParseDimensions interpreta el texto de la celda de dimensiones:
// exactamente tres números separados por "x" y/o espacios, en el orden
// altura, largura, comprimento (ej. "10 x 15 x 30").
func ParseDimensions(s string) (Dimensions, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == 'x' || r == 'X'
	})
	if len(tokens) != 3 {
		return Dimensions{}, fmt.Errorf("dimensiones mal formadas %q: se esperan 3 valores", s)
	}
	vals := make([]float64, 3)
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Dimensions{}, fmt.Errorf("dimensión no numérica %q", tok)
		}
		vals[i] = f
	}
	return Dimensions{Height: vals[0], Width: vals[1], Length: vals[2]}, nil
}

// Valid true cuando las tres medidas y su suma respetan los límites de Correios.
func (d Dimensions) Valid() bool {
	sum := d.Height + d.Width + d.Length
	return d.Height >= minHeight && d.Height <= maxHeight &&
		d.Width >= minWidth && d.Width <= maxWidth &&
		d.Length >= minLength && d.Length <= maxLength &&
		sum >= minSum && sum <= maxSum
}

// ValidateDimensions parse + verificación de límites en un paso. El error
// describe la regla violada, no pasa en silencio.
func ValidateDimensions(s string) (Dimensions, error) {
	d, err := ParseDimensions(s)
	if err != nil {
		return Dimensions{}, err
	}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: dimensiones fuera de los criterios de Correios: %q",
			domain.ErrRowInvalid, s)
	}
	return d, nil
}

// HeightStr, WidthStr, LengthStr representación textual para los formularios
// de las transportadoras (sin ceros sobrantes).
func (d Dimensions) HeightStr() string { return formatDim(d.Height) }
func (d Dimensions) WidthStr() string  { return formatDim(d.Width) }
func (d Dimensions) LengthStr() string { return formatDim(d.Length) }

func formatDim(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
