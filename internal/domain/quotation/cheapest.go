package quotation

import (
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// Cheapest determina, por fila, cuál columna de cotización tiene el menor
// valor. Devuelve CNPJ → encabezado de la columna ganadora.
//
// Filas con alguna cotización ausente o no parseable se saltan (una celda
// sin valor no puede ser "la menor"). Empates van a la columna de Correios;
// regla elegida y documentada aquí, el negocio no fijó otra. La función es
// pura: no muta la tabla, y dos corridas sobre la misma tabla devuelven el
// mismo conjunto.
func Cheapest(table *entity.Table) map[string]string {
	winners := make(map[string]string)
	for _, row := range table.Rows() {
		if entity.IsMissing(row.CorreiosQuote) || entity.IsMissing(row.JadlogQuote) {
			continue
		}
		correios, err := ParseBRL(row.CorreiosQuote)
		if err != nil {
			continue
		}
		jadlog, err := ParseBRL(row.JadlogQuote)
		if err != nil {
			continue
		}
		if jadlog.LessThan(correios) {
			winners[row.CNPJ] = entity.ColJadlogQuote
		} else {
			winners[row.CNPJ] = entity.ColCorreiosQuote
		}
	}
	return winners
}
