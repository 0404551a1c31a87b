package correios

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
)

// maxAttempts reintentos de carga de página del simulador. Es un detalle
// interno del actuador: el pipeline emite una sola consulta lógica por fila.
const maxAttempts = 3

// serviceCodes códigos del formulario para los servicios que aparecen por
// nombre en la planilla. Un código numérico informado directo pasa tal cual.
var serviceCodes = map[string]string{
	"PAC":         "04510",
	"SEDEX":       "04014",
	"SEDEX 10":    "04790",
	"SEDEX 12":    "04782",
	"SEDEX Hoje":  "04804",
	"Mini Envios": "04227",
}

// Client actuador del simulador público de precios y plazos de Correios:
// llena el formulario vía POST y lee el resultado de la página.
type Client struct {
	url        string
	originCEP  string
	retryDelay time.Duration
	httpClient *http.Client
}

// NewClient construye el actuador.
func NewClient(cfg config.CorreiosConfig, shipping config.ShippingConfig) *Client {
	return &Client{
		url:        cfg.URL,
		originCEP:  shipping.OriginCEP,
		retryDelay: 3 * time.Second,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Carrier identifica la transportadora de este actuador.
func (c *Client) Carrier() quotation.Carrier {
	return quotation.CarrierCorreios
}

// Quote simula el envío y devuelve plazo y valor ("R$ x,yy").
//
// Falla de red o página sin resultado se reintentan hasta maxAttempts y luego
// se devuelven envueltas en domain.ErrCarrierUnavailable (recuperable por
// fila).
func (c *Client) Quote(ctx context.Context, req ports.QuoteRequest) (ports.QuoteResult, error) {
	code, err := serviceCode(req.ServiceType)
	if err != nil {
		return ports.QuoteResult{}, err
	}

	form := url.Values{
		"cepOrigem":   {c.originCEP},
		"cepDestino":  {req.DestinationCEP},
		"servico":     {code},
		"Formato":     {"caixa"},
		"embalagem1":  {"outraEmbalagem1"},
		"Altura":      {req.Dimensions.HeightStr()},
		"Largura":     {req.Dimensions.WidthStr()},
		"Comprimento": {req.Dimensions.LengthStr()},
		"peso":        {req.Weight},
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ports.QuoteResult{}, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
		res, err := c.submit(ctx, form)
		if err == nil {
			return res, nil
		}
		if ctx.Err() != nil {
			return ports.QuoteResult{}, ctx.Err()
		}
		lastErr = err
	}
	return ports.QuoteResult{}, fmt.Errorf("%w: Correios no respondió tras %d intentos: %v",
		domain.ErrCarrierUnavailable, maxAttempts, lastErr)
}

// submit un intento de envío del formulario más lectura del resultado.
func (c *Client) submit(ctx context.Context, form url.Values) (ports.QuoteResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url,
		strings.NewReader(form.Encode()))
	if err != nil {
		return ports.QuoteResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.QuoteResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.QuoteResult{}, fmt.Errorf("status HTTP %d del simulador", resp.StatusCode)
	}

	// El sitio de Correios sirve ISO-8859-1; sin decodificar, los
	// encabezados acentuados de la tabla no coinciden.
	doc, err := goquery.NewDocumentFromReader(charmap.ISO8859_1.NewDecoder().Reader(resp.Body))
	if err != nil {
		return ports.QuoteResult{}, fmt.Errorf("leer página de resultado: %w", err)
	}
	return parseResult(doc)
}

// parseResult extrae plazo y valor de las filas destacadas de la tabla de
// resultado.
func parseResult(doc *goquery.Document) (ports.QuoteResult, error) {
	var deadline, amount string
	doc.Find("tr.destaque th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		label := strings.TrimSpace(th.Text())
		value := strings.TrimSpace(th.Next().Text())
		switch {
		case strings.HasPrefix(label, "Prazo de entrega"):
			deadline = value
		case strings.HasPrefix(label, "Valor total"):
			amount = value
		}
		return deadline == "" || amount == ""
	})
	if deadline == "" || amount == "" {
		return ports.QuoteResult{}, fmt.Errorf("página sin filas de resultado")
	}

	parsed, err := quotation.ParseBRL(amount)
	if err != nil {
		return ports.QuoteResult{}, fmt.Errorf("valor de cotización ilegible: %w", err)
	}
	return ports.QuoteResult{
		DeliveryDays: deadline,
		Amount:       quotation.FormatBRL(parsed),
	}, nil
}

// serviceCode resuelve el nombre de servicio de la planilla al código del
// formulario.
func serviceCode(service string) (string, error) {
	s := strings.TrimSpace(service)
	if code, ok := serviceCodes[s]; ok {
		return code, nil
	}
	// la planilla puede traer el código directo
	if s != "" && strings.Trim(s, "0123456789") == "" {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownService, service)
}
