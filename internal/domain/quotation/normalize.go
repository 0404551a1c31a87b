package quotation

import (
	"strings"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/pkg/logger"
)

// LookupOutcome resultado de una consulta al registro para un CNPJ de entrada.
// Company es nil cuando la consulta no produjo payload (falha o inválido).
type LookupOutcome struct {
	CNPJ    string
	Status  entity.LookupStatus
	Company *entity.Company
}

// CanonicalRecord registro canónico del registro federal: campos fijos, sin
// celdas vacías (N/A) y situación catastral ya traducida. Es la forma que la
// mezcla espera, independiente de qué campos opcionales devolvió la API.
type CanonicalRecord struct {
	CNPJ         string
	LegalName    string
	TradeName    string
	RegStatus    string
	Street       string
	Number       string
	Municipality string
	PostalCode   string
	Branch       string
	Phone        string
	Email        string
	Status       string // estado de la consulta, va a la columna STATUS
}

// Normalize proyecta los resultados con payload sobre el esquema canónico.
// Consultas sin payload (falha/inválido) quedan fuera: su efecto ya fue
// registrado en el STATUS de la fila por la etapa de enriquecimiento.
//
// Códigos de situación catastral fuera de la tabla oficial se conservan
// crudos y se registran en el log; no son un error duro.
func Normalize(outcomes []LookupOutcome, log *logger.Logger) []CanonicalRecord {
	records := make([]CanonicalRecord, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Company == nil {
			continue
		}
		c := o.Company
		reg := strings.TrimSpace(c.RegistrationStatus)
		if label, ok := entity.RegistrationStatusLabel(reg); ok {
			reg = label
		} else if reg != "" && !isKnownLabel(reg) {
			log.Warn().
				Str("cnpj", c.CNPJ).
				Str("situacao_cadastral", reg).
				Msg("código de situação cadastral não mapeado, mantido cru")
		}
		records = append(records, CanonicalRecord{
			CNPJ:         orMissing(c.CNPJ),
			LegalName:    orMissing(c.LegalName),
			TradeName:    orMissing(c.TradeName),
			RegStatus:    orMissing(reg),
			Street:       orMissing(c.Street),
			Number:       orMissing(c.Number),
			Municipality: orMissing(c.Municipality),
			PostalCode:   orMissing(c.PostalCode),
			Branch:       orMissing(c.BranchDescription),
			Phone:        orMissing(c.Phone),
			Email:        orMissing(c.Email),
			Status:       string(o.Status),
		})
	}
	return records
}

// isKnownLabel evita alertar cuando la situación ya viene traducida
// (re-normalizar una tabla canónica es un no-op).
func isKnownLabel(s string) bool {
	switch s {
	case "Nula", "Ativa", "Suspensa", "Inapta", "Ativa Não Regular", "Baixada":
		return true
	}
	return false
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return entity.Missing
	}
	return s
}

// ComposeAddress concatena logradouro, número y municipio separados por coma,
// saltando las partes vacías o N/A.
func ComposeAddress(street, number, municipality string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{street, number, municipality} {
		if !entity.IsMissing(strings.TrimSpace(p)) {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
