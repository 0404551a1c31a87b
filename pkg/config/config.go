package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Paths    PathsConfig
	Registry RegistryConfig
	Correios CorreiosConfig
	Jadlog   JadlogConfig
	Shipping ShippingConfig
	SMTP     SMTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string // nombre del proceso, aparece en los correos de notificación
}

// PathsConfig rutas de entrada/salida del proceso.
type PathsConfig struct {
	InputFile  string // planilla de entrada con la columna CNPJ
	OutputDir  string // directorio donde se escribe el informe final
	EmailsFile string // planilla con los destinatarios (primera columna)
	CacheFile  string // base sqlite del caché de consultas; vacío = caché deshabilitado
}

// RegistryConfig consulta de CNPJ contra BrasilAPI.
type RegistryConfig struct {
	BaseURL  string
	Timeout  time.Duration // timeout por consulta individual
	CacheTTL time.Duration // antigüedad máxima de una entrada del caché
}

// CorreiosConfig simulador de precios y plazos de Correios.
type CorreiosConfig struct {
	URL     string
	Timeout time.Duration
}

// JadlogConfig simulador de cotización de Jadlog.
type JadlogConfig struct {
	URL     string
	Timeout time.Duration
}

// ShippingConfig parámetros fijos del envío simulado.
type ShippingConfig struct {
	OriginCEP   string // CEP de origen usado en ambas transportadoras
	PickupValue string // valor de recolección enviado a Jadlog
}

// SMTPConfig credenciales del canal de notificación.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string // contraseña de aplicación, nunca la de la cuenta
}

// Addr devuelve la dirección del servidor SMTP (host:port).
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, INPUT_FILE, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "RPA VALOR COTAÇÃO"),
		},
		Paths: PathsConfig{
			InputFile:  getString(v, "INPUT_FILE", "data/processar/Planilha de Entrada Grupos.xlsx"),
			OutputDir:  getString(v, "OUTPUT_DIR", "data/processados"),
			EmailsFile: getString(v, "EMAILS_FILE", "data/emails.xlsx"),
			CacheFile:  getString(v, "CACHE_FILE", ""),
		},
		Registry: RegistryConfig{
			BaseURL:  getString(v, "BRASILAPI_URL", "https://brasilapi.com.br/api/cnpj/v1"),
			Timeout:  time.Duration(getInt(v, "BRASILAPI_TIMEOUT_SECONDS", 10)) * time.Second,
			CacheTTL: time.Duration(getInt(v, "CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		Correios: CorreiosConfig{
			URL:     getString(v, "CORREIOS_URL", "https://www2.correios.com.br/sistemas/precosPrazos/"),
			Timeout: time.Duration(getInt(v, "CORREIOS_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Jadlog: JadlogConfig{
			URL:     getString(v, "JADLOG_URL", "https://www.jadlog.com.br/jadlog/simulacao"),
			Timeout: time.Duration(getInt(v, "JADLOG_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Shipping: ShippingConfig{
			OriginCEP:   getString(v, "ORIGIN_CEP", "01310100"),
			PickupValue: getString(v, "PICKUP_VALUE", "0"),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt(v, "SMTP_PORT", 465),
			Username: getString(v, "EMAIL_USERNAME", ""),
			Password: getString(v, "EMAIL_PASSWORD", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
