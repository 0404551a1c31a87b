package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

func TestNormalizeCNPJ(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"relleno de ceros", "191", "00000000000191"},
		{"ya completo", "00000000000191", "00000000000191"},
		{"espacios recortados", "  191  ", "00000000000191"},
		{"no numérico queda igual", "12.345.678/0001-95", "12.345.678/0001-95"},
		{"vacío queda vacío", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.NormalizeCNPJ(tc.in))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	assert.True(t, entity.IsValidCNPJ("00000000000191"))
	assert.False(t, entity.IsValidCNPJ("0000000000191"))   // 13 dígitos
	assert.False(t, entity.IsValidCNPJ("000000000001915")) // 15 dígitos
	assert.False(t, entity.IsValidCNPJ("0000000000019a"))
	assert.False(t, entity.IsValidCNPJ(""))
}

func TestRegistrationStatusLabel(t *testing.T) {
	cases := []struct {
		raw    string
		want   string
		mapped bool
	}{
		{"1", "Nula", true},
		{"2", "Ativa", true},
		{"2.0", "Ativa", true}, // planillas exportan con decimal
		{"3", "Suspensa", true},
		{"4", "Inapta", true},
		{"5", "Ativa Não Regular", true},
		{"8", "Baixada", true},
		{"7", "", false},  // código fuera de la tabla oficial
		{"2.5", "", false},
		{"Ativa", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		label, ok := entity.RegistrationStatusLabel(tc.raw)
		assert.Equal(t, tc.mapped, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, label, "raw=%q", tc.raw)
	}
}

func TestTableIdentity(t *testing.T) {
	table := entity.NewTable()
	a := table.Append(&entity.QuoteRow{CNPJ: "00000000000191"})
	b := table.Append(&entity.QuoteRow{CNPJ: "00000000000272"})

	// un CNPJ repetido no crea fila nueva
	again := table.Append(&entity.QuoteRow{CNPJ: "00000000000191"})
	assert.Same(t, a, again)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"00000000000191", "00000000000272"}, table.CNPJs())

	table.SetStatus("00000000000272", "primero")
	table.SetStatus("00000000000272", "último")
	assert.Equal(t, "último", b.Status, "STATUS se sobrescribe, no se concatena")

	// SetStatus sobre clave inexistente no agrega filas
	table.SetStatus("99999999999999", "nada")
	assert.Equal(t, 2, table.Len())
}

func TestQuoteRowValueRoundTrip(t *testing.T) {
	row := &entity.QuoteRow{}
	for _, h := range entity.ReportHeaders {
		row.SetValue(h, "v:"+h)
	}
	for _, h := range entity.ReportHeaders {
		assert.Equal(t, "v:"+h, row.Value(h))
	}
	// columna desconocida: ignorada en escritura, vacía en lectura
	row.SetValue("COLUNA EXTRA", "x")
	assert.Equal(t, "", row.Value("COLUNA EXTRA"))
}
