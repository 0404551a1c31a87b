package quotation

import (
	"fmt"
	"strings"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// Carrier transportadora consultada por el pipeline.
type Carrier string

const (
	CarrierCorreios Carrier = "Correios"
	CarrierJadlog   Carrier = "Jadlog"
)

// requiredColumns columnas que cada transportadora exige para poder cotizar.
var requiredColumns = map[Carrier][]string{
	CarrierCorreios: {
		entity.ColCNPJ,
		entity.ColDimensions,
		entity.ColWeight,
		entity.ColCorreiosService,
		entity.ColPostalCode,
	},
	CarrierJadlog: {
		entity.ColCNPJ,
		entity.ColJadlogService,
		entity.ColDimensions,
		entity.ColWeight,
		entity.ColPostalCode,
		entity.ColOrderValue,
	},
}

// RequiredColumns conjunto de columnas obligatorias de la transportadora.
func RequiredColumns(c Carrier) []string {
	return requiredColumns[c]
}

// Incomplete fila que no puede ir a cotización, con el motivo textual que se
// escribe tal cual en su STATUS.
type Incomplete struct {
	CNPJ   string
	Reason string
}

// Err el motivo como error de dominio, para logs y clasificación.
func (i Incomplete) Err() error {
	return fmt.Errorf("%w: %s", domain.ErrRowInvalid, i.Reason)
}

// Partition separa las filas de la tabla en listas para la transportadora
// dada: listas "ready" (todos los campos obligatorios presentes y válidos) e
// "incomplete" (con motivo). La partición es total y determinista: cada fila
// cae exactamente en una de las dos, en el orden de entrada.
//
// Además de la presencia de campos se valida que las dimensiones respeten los
// límites de Correios y que el CEP sea solo dígitos.
func Partition(table *entity.Table, carrier Carrier) (ready []*entity.QuoteRow, incomplete []Incomplete) {
	required := requiredColumns[carrier]
	for _, row := range table.Rows() {
		var problems []string
		for _, col := range required {
			if entity.IsMissing(strings.TrimSpace(row.Value(col))) {
				problems = append(problems, col)
			}
		}
		if !containsProblem(problems, entity.ColDimensions) {
			if _, err := ValidateDimensions(row.Dimensions); err != nil {
				problems = append(problems, entity.ColDimensions)
			}
		}
		if !containsProblem(problems, entity.ColPostalCode) && !isAllDigits(strings.TrimSpace(row.PostalCode)) {
			problems = append(problems, entity.ColPostalCode)
		}
		if len(problems) > 0 {
			incomplete = append(incomplete, Incomplete{
				CNPJ:   row.CNPJ,
				Reason: "Campos vazios ou inválidos: " + strings.Join(problems, ", "),
			})
			continue
		}
		ready = append(ready, row)
	}
	return ready, incomplete
}

func containsProblem(problems []string, col string) bool {
	for _, p := range problems {
		if p == col {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
