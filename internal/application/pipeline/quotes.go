package pipeline

import (
	"context"

	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

// runCarrier particiona la tabla para la transportadora y cotiza las filas
// listas, una por vez. Filas incompletas reciben su motivo en el STATUS; una
// falla del actuador se registra en la fila y el lote continúa. El error de
// retorno queda reservado a cancelación de contexto.
func (p *Pipeline) runCarrier(ctx context.Context, table *entity.Table, quoter ports.CarrierQuoter) error {
	carrier := quoter.Carrier()
	ready, incomplete := quotation.Partition(table, carrier)

	for _, inc := range incomplete {
		table.SetStatus(inc.CNPJ, inc.Reason)
		p.log.Warn().
			Str("transportadora", string(carrier)).
			Str("cnpj", inc.CNPJ).
			Err(inc.Err()).
			Msg("fila sin datos suficientes para cotizar")
	}

	p.log.Info().
		Str("transportadora", string(carrier)).
		Int("listas", len(ready)).
		Int("incompletas", len(incomplete)).
		Msg("partición de filas calculada")

	for i, row := range ready {
		if err := ctx.Err(); err != nil {
			return err
		}
		log := p.log.With().
			Str("transportadora", string(carrier)).
			Str("cnpj", row.CNPJ).
			Logger()
		log.Info().Msgf("[%d/%d] cotizando", i+1, len(ready))

		// La partición ya validó las dimensiones; acá solo se re-parsean.
		dims, err := quotation.ParseDimensions(row.Dimensions)
		if err != nil {
			table.SetStatus(row.CNPJ, err.Error())
			continue
		}

		req := ports.QuoteRequest{
			CNPJ:           row.CNPJ,
			DestinationCEP: row.PostalCode,
			Weight:         row.Weight,
			Dimensions:     dims,
			OrderValue:     row.OrderValue,
		}
		switch carrier {
		case quotation.CarrierCorreios:
			req.ServiceType = row.CorreiosService
		case quotation.CarrierJadlog:
			req.ServiceType = row.JadlogService
		}

		res, err := quoter.Quote(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("falla del actuador, fila marcada y lote continúa")
			table.SetStatus(row.CNPJ, "Falha cotação "+string(carrier))
			continue
		}

		applyQuote(table, carrier, row.CNPJ, res)
		log.Info().Str("valor", res.Amount).Msg("cotización registrada")
	}
	return nil
}
