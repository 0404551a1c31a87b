package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/rpa-cotacao/internal/application/pipeline"
	"github.com/jhoicas/rpa-cotacao/internal/application/ports"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/brasilapi"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/cache"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/correios"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/email"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/excel"
	"github.com/jhoicas/rpa-cotacao/internal/infrastructure/jadlog"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
	"github.com/jhoicas/rpa-cotacao/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		RunID:   uuid.New().String(),
		Process: cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando bot de cotización")

	// Los destinatarios se cargan antes de correr el pipeline: sin canal de
	// notificación tampoco se puede avisar una falla.
	recipients, err := excel.ReadEmailList(cfg.Paths.EmailsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("leer destinatarios de notificación")
	}
	mailer := email.NewMailer(cfg.SMTP, cfg.App.Name, recipients, log)

	// Caché opcional de consultas al registro.
	var lookupCache ports.LookupCache
	if cfg.Paths.CacheFile != "" {
		c, err := cache.Open(cfg.Paths.CacheFile, cfg.Registry.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir caché de consultas")
		}
		lookupCache = c
	}

	store := excel.NewStore(cfg.Paths.InputFile, cfg.Paths.OutputDir, log)
	registry := brasilapi.NewClient(cfg.Registry)
	quoters := []ports.CarrierQuoter{
		correios.NewClient(cfg.Correios, cfg.Shipping),
		jadlog.NewClient(cfg.Jadlog, cfg.Shipping),
	}

	p := pipeline.New(store, registry, lookupCache, quoters, log)
	result, err := p.Run(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("ejecución finalizada con falla")
		// Notificación fire-and-forget: la falla del correo solo se registra.
		if sendErr := mailer.SendFailure(err.Error(), ""); sendErr != nil {
			log.Error().Err(sendErr).Msg("no se pudo notificar la falla")
		}
		os.Exit(1)
	}

	if err := mailer.SendReport(result.ReportPath, result.Totals); err != nil {
		log.Error().Err(err).Msg("no se pudo enviar el informe por correo")
	}

	log.Info().
		Int("total", result.Totals.Total).
		Int("finalizadas", result.Totals.Finished).
		Int("con_error", result.Totals.Errors).
		Msg("task finalizada con éxito")
}
