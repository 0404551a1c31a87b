package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
)

// Mensajes que van tal cual a la columna STATUS del informe.
const (
	statusNoAPIResponse = "Sem retorno da API"
	statusInvalidCNPJ   = "CNPJ inválido"
)

// enrich consulta el registro para cada CNPJ de la tabla, en orden de
// entrada, y produce exactamente un resultado por CNPJ.
//
// La falla de un CNPJ nunca interrumpe la secuencia: forma inválida corta sin
// llamada de red, y timeout/conexión/HTTP de error se degradan a "falha" con
// su marca en el STATUS de la fila. Solo errores no clasificados (falla de
// programación o de entorno) se propagan y abortan la corrida.
func (p *Pipeline) enrich(ctx context.Context, table *entity.Table) ([]quotation.LookupOutcome, error) {
	cnpjs := table.CNPJs()
	outcomes := make([]quotation.LookupOutcome, 0, len(cnpjs))

	for i, cnpj := range cnpjs {
		log := p.log.With().Str("cnpj", cnpj).Logger()
		log.Info().Msgf("[%d/%d] consultando registro", i+1, len(cnpjs))

		if !entity.IsValidCNPJ(cnpj) {
			log.Warn().Msg("CNPJ con forma inválida, consulta saltada")
			table.SetStatus(cnpj, statusInvalidCNPJ)
			outcomes = append(outcomes, quotation.LookupOutcome{CNPJ: cnpj, Status: entity.LookupInvalid})
			continue
		}

		company, err := p.lookup(ctx, cnpj)
		switch {
		case err == nil:
			log.Info().Msg("consulta exitosa")
			outcomes = append(outcomes, quotation.LookupOutcome{
				CNPJ:    cnpj,
				Status:  entity.LookupSuccess,
				Company: company,
			})
		case errors.Is(err, domain.ErrRegistryUnavailable):
			log.Warn().Err(err).Msg("registro sin respuesta para el CNPJ")
			table.SetStatus(cnpj, statusNoAPIResponse)
			outcomes = append(outcomes, quotation.LookupOutcome{CNPJ: cnpj, Status: entity.LookupFailed})
		default:
			log.Error().Err(err).Msg("error inesperado consultando el registro")
			return nil, fmt.Errorf("consulta CNPJ %s: %w", cnpj, err)
		}
	}
	return outcomes, nil
}

// lookup resuelve la consulta vía caché cuando está habilitado; los errores
// del caché solo se registran, nunca tumban la consulta.
func (p *Pipeline) lookup(ctx context.Context, cnpj string) (*entity.Company, error) {
	if p.cache != nil {
		if c, err := p.cache.Get(cnpj); err == nil {
			p.log.Debug().Str("cnpj", cnpj).Msg("consulta resuelta desde el caché")
			return c, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			p.log.Warn().Err(err).Str("cnpj", cnpj).Msg("caché ilegible, siguiendo a la API")
		}
	}

	company, err := p.registry.Lookup(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if p.cache != nil {
		if err := p.cache.Put(company); err != nil {
			p.log.Warn().Err(err).Str("cnpj", cnpj).Msg("no se pudo guardar en el caché")
		}
	}
	return company, nil
}
