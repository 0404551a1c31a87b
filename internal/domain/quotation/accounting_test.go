package quotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

func TestCalcFinishTask(t *testing.T) {
	table := entity.NewTable()
	table.Append(quotedRow("00000000000191", "R$ 20,00", "R$ 25,50")) // ambas
	table.Append(quotedRow("00000000000272", entity.Missing, "R$ 25,50"))
	table.Append(quotedRow("00360305000104", "R$ 20,00", entity.Missing))
	table.Append(quotedRow("33000167000101", entity.Missing, entity.Missing))
	table.Append(quotedRow("60701190000104", "", ""))

	totals := quotation.CalcFinishTask(table)

	assert.Equal(t, quotation.Totals{Total: 5, Finished: 3, Errors: 2}, totals)
}

func TestCalcFinishTaskEmptyTable(t *testing.T) {
	assert.Equal(t, quotation.Totals{}, quotation.CalcFinishTask(entity.NewTable()))
}
