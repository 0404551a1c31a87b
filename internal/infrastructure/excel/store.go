package excel

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/pkg/logger"
)

// reportSheet hoja del informe generado.
const reportSheet = "Resultado"

// highlightColor verde usado para destacar la menor cotización.
const highlightColor = "33CC33"

// Store lectura de la planilla de entrada y escritura del informe xlsx.
type Store struct {
	inputPath string
	outputDir string
	log       *logger.Logger
}

// NewStore construye el almacén de planillas.
func NewStore(inputPath, outputDir string, log *logger.Logger) *Store {
	return &Store{inputPath: inputPath, outputDir: outputDir, log: log}
}

// ReadInput abre la planilla de entrada y arma la tabla del informe: una fila
// por CNPJ (normalizado a 14 dígitos), pre-cargada con toda columna de la
// entrada que también exista en el informe. Las demás columnas se ignoran.
//
// La ausencia de la columna CNPJ es un desajuste estructural:
// domain.ErrMissingColumn, fatal para la corrida.
func (s *Store) ReadInput() (*entity.Table, error) {
	f, err := excelize.OpenFile(s.inputPath)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla %s: %w", s.inputPath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: planilla vacía, se esperaba encabezado con %q",
			domain.ErrMissingColumn, entity.ColCNPJ)
	}

	header := rows[0]
	cnpjCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), entity.ColCNPJ) {
			cnpjCol = i
			break
		}
	}
	if cnpjCol < 0 {
		return nil, fmt.Errorf("%w: %q en %s", domain.ErrMissingColumn, entity.ColCNPJ, s.inputPath)
	}

	table := entity.NewTable()
	for _, cells := range rows[1:] {
		if cnpjCol >= len(cells) {
			continue
		}
		cnpj := entity.NormalizeCNPJ(cells[cnpjCol])
		if cnpj == "" {
			continue
		}
		row := table.Append(&entity.QuoteRow{CNPJ: cnpj})
		for i, h := range header {
			if i == cnpjCol || i >= len(cells) {
				continue
			}
			row.SetValue(strings.TrimSpace(h), strings.TrimSpace(cells[i]))
		}
	}
	s.log.Debug().Str("hoja", sheet).Int("filas", table.Len()).Msg("planilla de entrada leída")
	return table, nil
}

// WriteReport escribe la tabla como xlsx en el directorio de salida, con el
// conjunto fijo de columnas del informe, y devuelve la ruta generada.
func (s *Store) WriteReport(table *entity.Table) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return "", err
	}

	headers := make([]interface{}, len(entity.ReportHeaders))
	for i, h := range entity.ReportHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(reportSheet, "A1", &headers); err != nil {
		return "", err
	}

	for i, row := range table.Rows() {
		values := row.Values()
		cells := make([]interface{}, len(values))
		for j, v := range values {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(reportSheet, cell, &cells); err != nil {
			return "", err
		}
	}

	name := "cnpj_" + time.Now().Format("2006-01-02_15h04m05s") + ".xlsx"
	path := filepath.Join(s.outputDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("guardar informe %s: %w", path, err)
	}
	s.log.Info().Str("archivo", path).Msg("informe xlsx generado")
	return path, nil
}

// HighlightCheapest pinta de verde, por fila, la celda de la cotización
// ganadora según winners (CNPJ → encabezado de columna). Celdas vacías no se
// pintan. Solo cambia presentación; los valores quedan intactos, y repetir la
// operación produce el mismo conjunto de celdas pintadas.
//
// Devuelve domain.ErrMissingColumn si el informe no tiene ambas columnas de
// cotización.
func (s *Store) HighlightCheapest(path string, winners map[string]string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("abrir informe %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	if err != nil || len(rows) == 0 {
		return fmt.Errorf("leer informe %s: %w", path, err)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i + 1 // excel es 1-indexado
	}
	for _, required := range []string{entity.ColCorreiosQuote, entity.ColJadlogQuote} {
		if _, ok := cols[required]; !ok {
			return fmt.Errorf("%w: %q en el informe", domain.ErrMissingColumn, required)
		}
	}
	cnpjCol, ok := cols[entity.ColCNPJ]
	if !ok {
		return fmt.Errorf("%w: %q en el informe", domain.ErrMissingColumn, entity.ColCNPJ)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightColor}},
	})
	if err != nil {
		return err
	}

	painted := 0
	for i, cells := range rows[1:] {
		if cnpjCol-1 >= len(cells) {
			continue
		}
		winner, ok := winners[strings.TrimSpace(cells[cnpjCol-1])]
		if !ok {
			continue
		}
		col := cols[winner]
		if col-1 >= len(cells) || strings.TrimSpace(cells[col-1]) == "" {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col, i+2)
		if err := f.SetCellStyle(reportSheet, cell, cell, styleID); err != nil {
			return err
		}
		painted++
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("guardar destaques en %s: %w", path, err)
	}
	s.log.Info().Int("celdas", painted).Msg("menor cotización destacada en el informe")
	return nil
}
