package quotation

import (
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// Merge aplica los registros canónicos sobre la tabla del informe, clave por
// CNPJ (left join: registros sin fila correspondiente se descartan).
//
// Es un coalesce, no una sobreescritura ciega: el valor del registro gana
// solo cuando no está ausente; un N/A del registro nunca borra un dato que ya
// estaba en la planilla. Las sub-columnas de dirección se componen en una
// única celda ENDEREÇO antes de aplicar. La cantidad de filas y el conjunto
// de CNPJs de la tabla no cambian.
func Merge(table *entity.Table, records []CanonicalRecord) {
	for i := range records {
		rec := &records[i]
		row, ok := table.Get(rec.CNPJ)
		if !ok {
			continue
		}
		coalesce(&row.LegalName, rec.LegalName)
		coalesce(&row.TradeName, rec.TradeName)
		coalesce(&row.RegStatus, rec.RegStatus)
		coalesce(&row.Address, ComposeAddress(rec.Street, rec.Number, rec.Municipality))
		coalesce(&row.PostalCode, rec.PostalCode)
		coalesce(&row.Branch, rec.Branch)
		coalesce(&row.Phone, rec.Phone)
		coalesce(&row.Email, rec.Email)
		coalesce(&row.Status, rec.Status)
	}
	FillMissing(table)
}

// coalesce escribe src sobre dst solo si src trae dato.
func coalesce(dst *string, src string) {
	if !entity.IsMissing(src) {
		*dst = src
	}
}

// FillMissing deja N/A en toda celda todavía vacía, para que el informe no
// tenga huecos silenciosos. N/A sigue contando como ausente para el preparo,
// el destaque y el cierre.
func FillMissing(table *entity.Table) {
	for _, row := range table.Rows() {
		for _, h := range entity.ReportHeaders {
			if row.Value(h) == "" {
				row.SetValue(h, entity.Missing)
			}
		}
	}
}
