package quotation

import (
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// Totals cierre de la ejecución para el reporte final.
type Totals struct {
	Total    int // filas procesadas
	Finished int // filas con al menos una cotización
	Errors   int // filas sin ninguna cotización
}

// CalcFinishTask calcula el cierre sobre la tabla final. Función pura: una
// fila cuenta como terminada cuando al menos una de las dos columnas de
// cotización tiene valor.
func CalcFinishTask(table *entity.Table) Totals {
	t := Totals{Total: table.Len()}
	for _, row := range table.Rows() {
		if !entity.IsMissing(row.CorreiosQuote) || !entity.IsMissing(row.JadlogQuote) {
			t.Finished++
		}
	}
	t.Errors = t.Total - t.Finished
	return t
}
