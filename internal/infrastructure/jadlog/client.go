package jadlog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
)

// serviceCodes modalidades del simulador por nombre de servicio de la
// planilla. Un nombre fuera de la tabla es un error por fila, no del lote.
var serviceCodes = map[string]string{
	"JADLOG Expresso":  "0",
	"JADLOG Econômico": "5",
	"JADLOG Doc":       "6",
	"JADLOG Cargo":     "12",
	"JADLOG Rodo":      "4",
	"JADLOG Package":   "3",
	"JADLOG .Com":      "9",
}

// simulationResponse respuesta JSON del simulador.
type simulationResponse struct {
	Total decimal.Decimal `json:"vltotal"`
	Error string          `json:"erro"`
}

// Client actuador del simulador de cotización de Jadlog.
type Client struct {
	url         string
	originCEP   string
	pickupValue string
	httpClient  *http.Client
}

// NewClient construye el actuador.
func NewClient(cfg config.JadlogConfig, shipping config.ShippingConfig) *Client {
	return &Client{
		url:         cfg.URL,
		originCEP:   shipping.OriginCEP,
		pickupValue: shipping.PickupValue,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Carrier identifica la transportadora de este actuador.
func (c *Client) Carrier() quotation.Carrier {
	return quotation.CarrierJadlog
}

// Quote simula el envío y devuelve el valor ("R$ x,yy"). Jadlog no informa
// plazo en el simulador, DeliveryDays queda vacío.
func (c *Client) Quote(ctx context.Context, req ports.QuoteRequest) (ports.QuoteResult, error) {
	code, ok := serviceCodes[strings.TrimSpace(req.ServiceType)]
	if !ok {
		return ports.QuoteResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownService, req.ServiceType)
	}

	// El formulario espera el valor del pedido con coma decimal.
	orderValue := strings.ReplaceAll(strings.TrimSpace(req.OrderValue), ".", ",")

	form := url.Values{
		"modalidade":       {code},
		"valAltura":        {req.Dimensions.HeightStr()},
		"valLargura":       {req.Dimensions.WidthStr()},
		"valComprimento":   {req.Dimensions.LengthStr()},
		"peso":             {req.Weight},
		"origem":           {c.originCEP},
		"destino":          {req.DestinationCEP},
		"valor_coleta":     {c.pickupValue},
		"valor_mercadoria": {orderValue},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url,
		strings.NewReader(form.Encode()))
	if err != nil {
		return ports.QuoteResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.QuoteResult{}, fmt.Errorf("%w: %v", domain.ErrCarrierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.QuoteResult{}, fmt.Errorf("%w: status HTTP %d",
			domain.ErrCarrierUnavailable, resp.StatusCode)
	}

	var payload simulationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.QuoteResult{}, fmt.Errorf("%w: respuesta ilegible del simulador: %v",
			domain.ErrCarrierUnavailable, err)
	}
	if payload.Error != "" {
		return ports.QuoteResult{}, fmt.Errorf("%w: %s", domain.ErrCarrierUnavailable, payload.Error)
	}
	if payload.Total.LessThanOrEqual(decimal.Zero) {
		return ports.QuoteResult{}, fmt.Errorf("%w: simulador sin valor de cotización",
			domain.ErrCarrierUnavailable)
	}

	return ports.QuoteResult{Amount: quotation.FormatBRL(payload.Total)}, nil
}
