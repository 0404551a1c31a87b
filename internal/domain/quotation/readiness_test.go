package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

// readyRow fila con todos los campos que ambas transportadoras exigen.
func readyRow(cnpj string) *entity.QuoteRow {
	return &entity.QuoteRow{
		CNPJ:            cnpj,
		PostalCode:      "70040912",
		OrderValue:      "150.00",
		Dimensions:      "10 x 15 x 30",
		Weight:          "1.5",
		JadlogService:   "JADLOG Expresso",
		CorreiosService: "SEDEX",
	}
}

func TestPartitionTotalAndDisjoint(t *testing.T) {
	table := entity.NewTable()
	table.Append(readyRow("00000000000191"))

	broken := readyRow("00000000000272")
	broken.Weight = entity.Missing
	broken.CorreiosService = ""
	table.Append(broken)

	table.Append(readyRow("00360305000104"))

	ready, incomplete := quotation.Partition(table, quotation.CarrierCorreios)

	// partición total: cada fila cae exactamente en una lista, en orden
	assert.Equal(t, table.Len(), len(ready)+len(incomplete))
	require.Len(t, ready, 2)
	assert.Equal(t, "00000000000191", ready[0].CNPJ)
	assert.Equal(t, "00360305000104", ready[1].CNPJ)

	require.Len(t, incomplete, 1)
	assert.Equal(t, "00000000000272", incomplete[0].CNPJ)
	assert.Equal(t,
		"Campos vazios ou inválidos: "+entity.ColWeight+", "+entity.ColCorreiosService,
		incomplete[0].Reason, "motivo lista las columnas en el orden exigido")
	assert.ErrorIs(t, incomplete[0].Err(), domain.ErrRowInvalid)
	assert.Contains(t, incomplete[0].Err().Error(), incomplete[0].Reason)
}

func TestPartitionPerCarrierColumns(t *testing.T) {
	// sin VALOR DO PEDIDO: Jadlog no cotiza, Correios sí
	row := readyRow("00000000000191")
	row.OrderValue = ""
	table := entity.NewTable()
	table.Append(row)

	ready, incomplete := quotation.Partition(table, quotation.CarrierCorreios)
	assert.Len(t, ready, 1)
	assert.Empty(t, incomplete)

	ready, incomplete = quotation.Partition(table, quotation.CarrierJadlog)
	assert.Empty(t, ready)
	require.Len(t, incomplete, 1)
	assert.Contains(t, incomplete[0].Reason, entity.ColOrderValue)
}

func TestPartitionValidatesDimensionsAndCEP(t *testing.T) {
	outOfBounds := readyRow("00000000000191")
	outOfBounds.Dimensions = "0.3 x 15 x 30" // altura bajo el mínimo

	badCEP := readyRow("00000000000272")
	badCEP.PostalCode = "70040-912" // guion no es dígito

	table := entity.NewTable()
	table.Append(outOfBounds)
	table.Append(badCEP)

	ready, incomplete := quotation.Partition(table, quotation.CarrierCorreios)
	assert.Empty(t, ready)
	require.Len(t, incomplete, 2)
	assert.Contains(t, incomplete[0].Reason, entity.ColDimensions)
	assert.Contains(t, incomplete[1].Reason, entity.ColPostalCode)
}
