package ports

import (
	"context"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

// RegistryClient consulta de datos catastrales por CNPJ.
// Implementaciones deben devolver errores envueltos en
// domain.ErrRegistryUnavailable para timeout/conexión/HTTP de error;
// cualquier otro error se considera falla de programación y aborta la corrida.
type RegistryClient interface {
	Lookup(ctx context.Context, cnpj string) (*entity.Company, error)
}

// LookupCache caché opcional de consultas exitosas al registro.
type LookupCache interface {
	Get(cnpj string) (*entity.Company, error) // domain.ErrNotFound si no está
	Put(c *entity.Company) error
}

// QuoteRequest una consulta lógica de cotización a una transportadora.
type QuoteRequest struct {
	CNPJ           string
	ServiceType    string
	DestinationCEP string
	Weight         string
	Dimensions     quotation.Dimensions
	OrderValue     string // solo Jadlog
}

// QuoteResult respuesta de la transportadora. DeliveryDays queda vacío para
// transportadoras que no informan plazo.
type QuoteResult struct {
	DeliveryDays string
	Amount       string // formato del informe, ej. "R$ 23,90"
}

// CarrierQuoter actuador de una transportadora: llena el formulario de
// simulación y lee la cotización. Una consulta lógica por fila lista; los
// reintentos de carga de página son asunto interno del actuador.
type CarrierQuoter interface {
	Carrier() quotation.Carrier
	Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error)
}

// ReportStore lectura de la planilla de entrada y persistencia del informe.
type ReportStore interface {
	// ReadInput crea la tabla del informe desde la planilla de entrada:
	// una fila por CNPJ, pre-cargada con las columnas ya presentes.
	// domain.ErrMissingColumn si falta la columna CNPJ.
	ReadInput() (*entity.Table, error)
	// WriteReport persiste la tabla y devuelve la ruta del artefacto.
	WriteReport(table *entity.Table) (string, error)
	// HighlightCheapest pinta la celda ganadora por fila en el artefacto ya
	// escrito. Solo presentación: los valores no cambian.
	HighlightCheapest(path string, winners map[string]string) error
}

// Notifier canal de notificación fire-and-forget.
type Notifier interface {
	SendReport(attachmentPath string, totals quotation.Totals) error
	SendFailure(msg string, screenshotPath string) error
}
