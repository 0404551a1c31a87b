package quotation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBRL convierte un monto en formato brasileño ("R$ 1.234,56") a decimal.
// Acepta también montos ya con punto decimal ("23.90").
func ParseBRL(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")  // separador de millar
		v = strings.Replace(v, ",", ".", 1) // coma decimal
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido %q: %w", s, err)
	}
	return d, nil
}

// FormatBRL formatea un decimal como monto brasileño con dos decimales
// ("R$ 23,90"), como aparece en el informe.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
