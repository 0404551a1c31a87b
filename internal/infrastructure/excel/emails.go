package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadEmailList lee los destinatarios de notificación: celdas no vacías de la
// primera columna de la primera hoja.
func ReadEmailList(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla de e-mails %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("leer planilla de e-mails: %w", err)
	}

	var emails []string
	for _, cells := range rows {
		if len(cells) == 0 {
			continue
		}
		if v := strings.TrimSpace(cells[0]); v != "" {
			emails = append(emails, v)
		}
	}
	return emails, nil
}
