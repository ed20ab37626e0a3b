package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env, archivo opcional y flags).
type Config struct {
	App    AppConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Seed   SeedConfig
	Ticket TicketConfig
	CORS   CORSConfig
	Log    LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SeedConfig datos de ejemplo cargados al arrancar.
type SeedConfig struct {
	Enabled       bool
	File          string // vacío = fixture embebido
	AdminPassword string
}

// TicketConfig parámetros de reservas.
type TicketConfig struct {
	ReferencePrefix string
}

// CORSConfig orígenes permitidos (coma-separados, "*" = todos).
type CORSConfig struct {
	AllowOrigins string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// IsProduction indica si APP_ENV es production.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

const (
	devJWTSecret     = "tiyende-dev-secret"
	devAdminPassword = "admin123"
)

// Load lee la configuración. Prioridad: flags > env vars > archivo (.env / config.env) > defaults.
// args son los argumentos de línea de comandos sin el nombre del programa (os.Args[1:]).
// Flags soportados: --env, --port, --seed.
func Load(args ...string) (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	fs := pflag.NewFlagSet("tiyende-api", pflag.ContinueOnError)
	fs.String("env", "", "entorno: development, staging, production")
	fs.Int("port", 0, "puerto HTTP")
	fs.String("seed", "", "ruta a un fixture YAML de datos de ejemplo")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}
	for key, flag := range map[string]string{"APP_ENV": "env", "HTTP_PORT": "port", "SEED_FILE": "seed"} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", flag, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION_MINUTES"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Seed: SeedConfig{
			Enabled:       v.GetBool("SEED_ENABLED"),
			File:          v.GetString("SEED_FILE"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
		},
		Ticket: TicketConfig{
			ReferencePrefix: v.GetString("TICKET_REFERENCE_PREFIX"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.App.IsProduction() {
			return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en production")
		}
		cfg.JWT.Secret = devJWTSecret
	}
	if cfg.App.IsProduction() && cfg.Seed.Enabled && cfg.Seed.AdminPassword == devAdminPassword {
		return nil, fmt.Errorf("config: ADMIN_PASSWORD de desarrollo no permitido en production con SEED_ENABLED")
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser mayor a 0")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "tiyende-api")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION_MINUTES", 60*24)
	v.SetDefault("JWT_ISSUER", "tiyende-api")
	v.SetDefault("SEED_ENABLED", true)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("ADMIN_PASSWORD", devAdminPassword)
	v.SetDefault("TICKET_REFERENCE_PREFIX", "TIY")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
}
