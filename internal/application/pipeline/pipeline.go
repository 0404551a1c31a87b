package pipeline

import (
	"context"
	"fmt"

	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
	"github.com/jhoicas/rpa-cotacao/pkg/logger"
)

// Pipeline orquesta el flujo completo de cotización: enriquecimiento por
// CNPJ, mezcla, preparación por transportadora, cotización, destaque del
// menor valor y cierre. Todo corre estrictamente en secuencia sobre una única
// tabla mutable; las fallas por fila quedan en el STATUS de la fila y las
// fallas estructurales abortan la corrida.
type Pipeline struct {
	store    ports.ReportStore
	registry ports.RegistryClient
	cache    ports.LookupCache // opcional, nil = sin caché
	quoters  []ports.CarrierQuoter
	log      *logger.Logger
}

// New construye el pipeline. El orden de quoters define el orden de consulta.
func New(store ports.ReportStore, registry ports.RegistryClient,
	cache ports.LookupCache, quoters []ports.CarrierQuoter, log *logger.Logger) *Pipeline {
	return &Pipeline{
		store:    store,
		registry: registry,
		cache:    cache,
		quoters:  quoters,
		log:      log,
	}
}

// Result artefacto y cierre de una corrida exitosa.
type Result struct {
	ReportPath string
	Totals     quotation.Totals
}

// Run ejecuta el proceso de punta a punta y devuelve la ruta del informe y
// los totales. Cualquier error devuelto es fatal para la corrida (estructura
// de planilla, escritura del artefacto o falla inesperada de programación);
// los problemas por fila nunca llegan acá.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	p.log.Info().Msg("inicio del proceso de cotización")

	table, err := p.store.ReadInput()
	if err != nil {
		return Result{}, fmt.Errorf("leer planilla de entrada: %w", err)
	}
	p.log.Info().Int("filas", table.Len()).Msg("planilla de entrada cargada")

	outcomes, err := p.enrich(ctx, table)
	if err != nil {
		return Result{}, fmt.Errorf("enriquecimiento: %w", err)
	}

	records := quotation.Normalize(outcomes, p.log)
	quotation.Merge(table, records)
	p.log.Info().Int("registros", len(records)).Msg("datos del registro mezclados en el informe")

	for _, quoter := range p.quoters {
		if err := p.runCarrier(ctx, table, quoter); err != nil {
			return Result{}, fmt.Errorf("cotización %s: %w", quoter.Carrier(), err)
		}
	}

	path, err := p.store.WriteReport(table)
	if err != nil {
		return Result{}, fmt.Errorf("escribir informe: %w", err)
	}

	winners := quotation.Cheapest(table)
	if err := p.store.HighlightCheapest(path, winners); err != nil {
		return Result{}, fmt.Errorf("destacar menor cotización: %w", err)
	}

	totals := quotation.CalcFinishTask(table)
	p.log.Info().
		Int("total", totals.Total).
		Int("finalizadas", totals.Finished).
		Int("con_error", totals.Errors).
		Str("informe", path).
		Msg("proceso de cotización finalizado")

	return Result{ReportPath: path, Totals: totals}, nil
}

// applyQuote escritura idéntica-por-clave del resultado de una transportadora
// sobre la fila: re-aplicar el mismo resultado deja la fila igual.
func applyQuote(table *entity.Table, carrier quotation.Carrier, cnpj string, res ports.QuoteResult) {
	row, ok := table.Get(cnpj)
	if !ok {
		return
	}
	switch carrier {
	case quotation.CarrierCorreios:
		row.CorreiosQuote = res.Amount
		row.CorreiosDeadline = res.DeliveryDays
	case quotation.CarrierJadlog:
		row.JadlogQuote = res.Amount
	}
}
