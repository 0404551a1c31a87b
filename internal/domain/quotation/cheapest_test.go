package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

func quotedRow(cnpj, jadlog, correios string) *entity.QuoteRow {
	return &entity.QuoteRow{CNPJ: cnpj, JadlogQuote: jadlog, CorreiosQuote: correios}
}

func TestCheapest(t *testing.T) {
	table := entity.NewTable()
	table.Append(quotedRow("00000000000191", "R$ 20,00", "R$ 25,50")) // gana Jadlog
	table.Append(quotedRow("00000000000272", "R$ 30,00", "R$ 25,50")) // gana Correios
	table.Append(quotedRow("00360305000104", "R$ 25,50", "R$ 25,50")) // empate
	table.Append(quotedRow("33000167000101", entity.Missing, "R$ 25,50"))
	table.Append(quotedRow("60701190000104", "R$ 20,00", ""))
	table.Append(quotedRow("47960950000121", "ilegível", "R$ 25,50"))

	winners := quotation.Cheapest(table)

	assert.Equal(t, map[string]string{
		"00000000000191": entity.ColJadlogQuote,
		"00000000000272": entity.ColCorreiosQuote,
		"00360305000104": entity.ColCorreiosQuote, // empate va a Correios
	}, winners, "filas sin ambas cotizaciones legibles quedan fuera")
}

func TestCheapestPure(t *testing.T) {
	table := entity.NewTable()
	row := table.Append(quotedRow("00000000000191", "R$ 20,00", "R$ 25,50"))

	first := quotation.Cheapest(table)
	second := quotation.Cheapest(table)

	assert.Equal(t, first, second, "misma tabla, mismo resultado")
	assert.Equal(t, "R$ 20,00", row.JadlogQuote, "la tabla no se muta")
	assert.Equal(t, "R$ 25,50", row.CorreiosQuote)
}
