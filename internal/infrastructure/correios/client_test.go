// Paquete interno para poder acortar retryDelay en los tests de reintento.
package correios

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
)

// resultPage página mínima del simulador con las filas destacadas que el
// actuador lee, en ISO-8859-1 implícito (solo ASCII acá, da igual).
const resultPage = `<html><body><table>
<tr class="destaque"><th>Prazo de entrega</th><th>5 dias &uacute;teis</th></tr>
<tr class="destaque"><th>Valor total</th><th>R$ 25,50</th></tr>
</table></body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(
		config.CorreiosConfig{URL: srv.URL, Timeout: 2 * time.Second},
		config.ShippingConfig{OriginCEP: "01310100"},
	)
	c.retryDelay = time.Millisecond
	return c
}

func sedexRequest() ports.QuoteRequest {
	return ports.QuoteRequest{
		CNPJ:           "00000000000191",
		ServiceType:    "SEDEX",
		DestinationCEP: "70040912",
		Weight:         "1.5",
		Dimensions:     quotation.Dimensions{Height: 10, Width: 15, Length: 30},
	}
}

func TestQuoteSuccess(t *testing.T) {
	var form map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(resultPage))
	})

	res, err := client.Quote(context.Background(), sedexRequest())
	require.NoError(t, err)
	assert.Equal(t, "5 dias úteis", res.DeliveryDays)
	assert.Equal(t, "R$ 25,50", res.Amount)

	assert.Equal(t, []string{"01310100"}, form["cepOrigem"])
	assert.Equal(t, []string{"70040912"}, form["cepDestino"])
	assert.Equal(t, []string{"04014"}, form["servico"], "SEDEX resuelto al código del formulario")
	assert.Equal(t, []string{"caixa"}, form["Formato"])
	assert.Equal(t, []string{"10"}, form["Altura"])
	assert.Equal(t, []string{"15"}, form["Largura"])
	assert.Equal(t, []string{"30"}, form["Comprimento"])
	assert.Equal(t, []string{"1.5"}, form["peso"])
}

func TestQuoteRetriesThenSucceeds(t *testing.T) {
	var attempts int
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "fora do ar", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(resultPage))
	})

	res, err := client.Quote(context.Background(), sedexRequest())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "R$ 25,50", res.Amount)
}

func TestQuoteExhaustsRetries(t *testing.T) {
	var attempts int
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		// página válida pero sin filas de resultado
		w.Write([]byte(`<html><body><p>Sistema indisponível</p></body></html>`))
	})

	_, err := client.Quote(context.Background(), sedexRequest())
	assert.ErrorIs(t, err, domain.ErrCarrierUnavailable)
	assert.Equal(t, maxAttempts, attempts)
}

func TestQuoteContextCancelStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		cancel()
		http.Error(w, "fora do ar", http.StatusServiceUnavailable)
	})

	_, err := client.Quote(ctx, sedexRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceCode(t *testing.T) {
	code, err := serviceCode("PAC")
	require.NoError(t, err)
	assert.Equal(t, "04510", code)

	code, err = serviceCode("04162") // código informado directo en la planilla
	require.NoError(t, err)
	assert.Equal(t, "04162", code)

	_, err = serviceCode("Transportadora Fantasia")
	assert.ErrorIs(t, err, domain.ErrUnknownService)

	_, err = serviceCode("")
	assert.ErrorIs(t, err, domain.ErrUnknownService)
}
