package entity

// Encabezados del informe final, exactamente como los espera el área de negocio.
const (
	ColCNPJ             = "CNPJ"
	ColLegalName        = "RAZÃO SOCIAL"
	ColTradeName        = "NOME FANTASIA"
	ColRegStatus        = "SITUAÇÃO CADASTRAL"
	ColAddress          = "ENDEREÇO"
	ColPostalCode       = "CEP"
	ColBranch           = "DESCRIÇÃO MATRIZ FILIAL"
	ColPhone            = "TELEFONE + DDD"
	ColEmail            = "E-MAIL"
	ColOrderValue       = "VALOR DO PEDIDO"
	ColDimensions       = "DIMENSÕES CAIXA (altura x largura x comprimento cm)"
	ColWeight           = "PESO DO PRODUTO"
	ColJadlogService    = "TIPO DE SERVIÇO JADLOG"
	ColCorreiosService  = "TIPO DE SERVIÇO CORREIOS"
	ColJadlogQuote      = "VALOR COTAÇÃO JADLOG"
	ColCorreiosQuote    = "VALOR COTAÇÃO CORREIOS"
	ColCorreiosDeadline = "PRAZO DE ENTREGA CORREIOS"
	ColStatus           = "STATUS"
)

// Missing valor que marca una celda sin dato en el informe.
const Missing = "N/A"

// ReportHeaders orden fijo de columnas del informe, independiente de qué
// campos haya devuelto el registro.
var ReportHeaders = []string{
	ColCNPJ, ColLegalName, ColTradeName, ColRegStatus, ColAddress,
	ColPostalCode, ColBranch, ColPhone, ColEmail, ColOrderValue,
	ColDimensions, ColWeight, ColJadlogService, ColCorreiosService,
	ColJadlogQuote, ColCorreiosQuote, ColCorreiosDeadline, ColStatus,
}

// QuoteRow una fila del informe final, identificada por CNPJ.
type QuoteRow struct {
	CNPJ             string
	LegalName        string
	TradeName        string
	RegStatus        string
	Address          string
	PostalCode       string
	Branch           string
	Phone            string
	Email            string
	OrderValue       string
	Dimensions       string
	Weight           string
	JadlogService    string
	CorreiosService  string
	JadlogQuote      string
	CorreiosQuote    string
	CorreiosDeadline string
	Status           string
}

// IsMissing true para celdas vacías o con el marcador N/A.
func IsMissing(v string) bool {
	return v == "" || v == Missing
}

// Value devuelve la celda correspondiente al encabezado dado.
func (r *QuoteRow) Value(header string) string {
	if p := r.field(header); p != nil {
		return *p
	}
	return ""
}

// SetValue escribe la celda correspondiente al encabezado dado.
// Encabezados desconocidos se ignoran (columnas extra de la planilla de
// entrada no forman parte del informe).
func (r *QuoteRow) SetValue(header, v string) {
	if p := r.field(header); p != nil {
		*p = v
	}
}

func (r *QuoteRow) field(header string) *string {
	switch header {
	case ColCNPJ:
		return &r.CNPJ
	case ColLegalName:
		return &r.LegalName
	case ColTradeName:
		return &r.TradeName
	case ColRegStatus:
		return &r.RegStatus
	case ColAddress:
		return &r.Address
	case ColPostalCode:
		return &r.PostalCode
	case ColBranch:
		return &r.Branch
	case ColPhone:
		return &r.Phone
	case ColEmail:
		return &r.Email
	case ColOrderValue:
		return &r.OrderValue
	case ColDimensions:
		return &r.Dimensions
	case ColWeight:
		return &r.Weight
	case ColJadlogService:
		return &r.JadlogService
	case ColCorreiosService:
		return &r.CorreiosService
	case ColJadlogQuote:
		return &r.JadlogQuote
	case ColCorreiosQuote:
		return &r.CorreiosQuote
	case ColCorreiosDeadline:
		return &r.CorreiosDeadline
	case ColStatus:
		return &r.Status
	}
	return nil
}

// Values celdas de la fila en el orden de ReportHeaders.
func (r *QuoteRow) Values() []string {
	out := make([]string, len(ReportHeaders))
	for i, h := range ReportHeaders {
		out[i] = r.Value(h)
	}
	return out
}

// Table tabla mutable del informe: filas en el orden de entrada, indexadas
// por CNPJ. Una sola instancia atraviesa todas las etapas del pipeline, que
// corren estrictamente en secuencia; no hay acceso concurrente.
type Table struct {
	rows  []*QuoteRow
	index map[string]*QuoteRow
}

// NewTable crea una tabla vacía.
func NewTable() *Table {
	return &Table{index: make(map[string]*QuoteRow)}
}

// Append agrega una fila nueva. Un CNPJ repetido no crea fila: la identidad
// CNPJ→fila es única durante todo el pipeline.
func (t *Table) Append(row *QuoteRow) *QuoteRow {
	if existing, ok := t.index[row.CNPJ]; ok {
		return existing
	}
	t.rows = append(t.rows, row)
	t.index[row.CNPJ] = row
	return row
}

// Get devuelve la fila del CNPJ dado.
func (t *Table) Get(cnpj string) (*QuoteRow, bool) {
	row, ok := t.index[cnpj]
	return row, ok
}

// Rows filas en orden de entrada.
func (t *Table) Rows() []*QuoteRow {
	return t.rows
}

// Len cantidad de filas.
func (t *Table) Len() int {
	return len(t.rows)
}

// CNPJs claves en orden de entrada.
func (t *Table) CNPJs() []string {
	out := make([]string, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r.CNPJ)
	}
	return out
}

// SetStatus sobrescribe el STATUS de la fila (último escritor gana, nunca se
// concatena). No hace nada si el CNPJ no existe.
func (t *Table) SetStatus(cnpj, status string) {
	if row, ok := t.index[cnpj]; ok {
		row.Status = status
	}
}
