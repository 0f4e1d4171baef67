package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "PETTRACK"

	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverLocal    = "local"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// StorageConfig elige el backend de persistencia.
// - memory: mapas en memoria (dev/tests)
// - postgres: DSN de pgx
// - sqlite: Path al archivo .db (modernc, sin cgo)
// - local: Path al archivo bolt (key-value)
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Path   string `mapstructure:"path"`
}

type AuthConfig struct {
	// DevMode habilita el header X-Debug-User-ID.
	DevMode    bool             `mapstructure:"dev_mode"`
	SessionTTL time.Duration    `mapstructure:"session_ttl"`
	Remote     RemoteAuthConfig `mapstructure:"remote"`
}

type RemoteAuthConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "pet-exercise-tracker")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.path", "pettrack.db")

	v.SetDefault("auth.dev_mode", false)
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.remote.base_url", "")
	v.SetDefault("auth.remote.api_key", "")
	v.SetDefault("auth.remote.timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load lee config.yaml (si existe) + env PETTRACK_*.
// Si path viene explícito y no existe, es error; si se busca por defecto, no.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Compat con las env vars que ya usaba el servicio.
	_ = v.BindEnv("storage.dsn", envPrefix+"_STORAGE_DSN", "DB_DSN")
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", envPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("app.name", envPrefix+"_APP_NAME", "APP_NAME")

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pettrack"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	// PORT (plataformas tipo PaaS) solo aplica si no se configuró addr explícito.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv(envPrefix+"_HTTP_ADDR") == "" && !v.InConfig("http.addr") {
		cfg.HTTP.Addr = ":" + port
	}

	// DB_DSN sin driver explícito implica postgres.
	if cfg.Storage.DSN != "" && os.Getenv(envPrefix+"_STORAGE_DRIVER") == "" && !v.InConfig("storage.driver") {
		cfg.Storage.Driver = DriverPostgres
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("config: storage.dsn required for postgres")
		}
	case DriverSQLite, DriverLocal:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("config: storage.path required for %s", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	if c.Auth.SessionTTL <= 0 {
		return errors.New("config: auth.session_ttl must be positive")
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("config: http.addr required")
	}
	return nil
}
