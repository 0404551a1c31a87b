package entity

import (
	"strconv"
	"strings"
)

// LookupStatus clasifica el resultado de una consulta al registro.
// Los literales son los mismos que aparecen en el informe final.
type LookupStatus string

const (
	LookupSuccess LookupStatus = "Sucesso"
	LookupFailed  LookupStatus = "falha"
	LookupInvalid LookupStatus = "inválido"
)

// Company datos catastrales de una empresa según el registro federal,
// identificada por su CNPJ (14 dígitos).
type Company struct {
	CNPJ               string
	LegalName          string // razão social
	TradeName          string // nome fantasia
	RegistrationStatus string // código crudo del registro ("2", "8", a veces "2.0")
	Street             string // logradouro
	Number             string
	Municipality       string
	PostalCode         string // CEP
	BranchDescription  string // matriz o filial
	Phone              string // DDD + teléfono
	Email              string
}

// registrationStatusLabels códigos de situación catastral de la Receita Federal.
// Cualquier otro código se conserva crudo en el informe.
var registrationStatusLabels = map[int]string{
	1: "Nula",
	2: "Ativa",
	3: "Suspensa",
	4: "Inapta",
	5: "Ativa Não Regular",
	8: "Baixada",
}

// RegistrationStatusLabel traduce el código de situación catastral a su
// etiqueta oficial. Acepta valores con decimal ("2.0") porque así llegan de
// algunas planillas. ok=false cuando el código no está mapeado o no es numérico.
func RegistrationStatusLabel(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f != float64(int(f)) {
		return "", false
	}
	label, ok := registrationStatusLabels[int(f)]
	return label, ok
}

// NormalizeCNPJ recorta espacios y rellena con ceros a la izquierda hasta 14
// dígitos, preservando CNPJs que Excel guardó como número.
func NormalizeCNPJ(raw string) string {
	s := strings.TrimSpace(raw)
	// Excel suele exportar "191" donde la planilla mostraba 00000000000191
	if len(s) < 14 && isDigits(s) {
		s = strings.Repeat("0", 14-len(s)) + s
	}
	return s
}

// IsValidCNPJ verifica la forma exigida por el registro: exactamente 14
// dígitos numéricos.
func IsValidCNPJ(cnpj string) bool {
	return len(cnpj) == 14 && isDigits(cnpj)
}

func isDigits(s string) bool {
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
