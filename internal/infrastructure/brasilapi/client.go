package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
)

// userAgent el endpoint público rechaza clientes sin User-Agent de navegador.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91"

// Client cliente HTTP de BrasilAPI para consulta de CNPJ.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout por consulta configurado.
func NewClient(cfg config.RegistryConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxConnsPerHost:     5,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// Lookup consulta los datos catastrales del CNPJ.
//
// Timeout, falla de conexión y status HTTP de error se devuelven envueltos en
// domain.ErrRegistryUnavailable: son recuperables por fila. Un payload que no
// se deja decodificar no lo es, y se propaga crudo.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*entity.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+cnpj, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(cnpj, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: CNPJ %s, status HTTP %d",
			domain.ErrRegistryUnavailable, cnpj, resp.StatusCode)
	}

	var payload companyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de BrasilAPI para %s: %w", cnpj, err)
	}
	return payload.ToDomain(), nil
}

// classifyTransportError separa lo recuperable (timeout, conexión) de lo que
// debe abortar la corrida.
func classifyTransportError(cnpj string, err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: timeout consultando CNPJ %s", domain.ErrRegistryUnavailable, cnpj)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: falla de conexión consultando CNPJ %s: %v",
			domain.ErrRegistryUnavailable, cnpj, urlErr.Err)
	}
	return err
}
