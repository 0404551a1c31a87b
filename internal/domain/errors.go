package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrMissingColumn indica un desajuste estructural de la planilla;
	// aborta la ejecución, ninguna recuperación por fila lo resuelve.
	ErrMissingColumn = errors.New("columna obligatoria ausente")

	// ErrRegistryUnavailable cubre timeout, falla de conexión y respuestas
	// HTTP de error del registro. Recuperable por fila.
	ErrRegistryUnavailable = errors.New("registro de CNPJ no disponible")

	// ErrCarrierUnavailable cubre fallas del simulador de la transportadora
	// (sitio fuera, respuesta sin resultado). Recuperable por fila.
	ErrCarrierUnavailable = errors.New("transportadora no disponible")

	// ErrRowInvalid marca una fila sin los datos mínimos para cotizar.
	ErrRowInvalid = errors.New("fila inválida para cotización")

	// ErrUnknownService el tipo de servicio informado no existe en la tabla
	// de la transportadora.
	ErrUnknownService = errors.New("tipo de servicio no reconocido")

	// ErrNotFound entrada inexistente (caché de consultas).
	ErrNotFound = errors.New("registro no encontrado")
)
