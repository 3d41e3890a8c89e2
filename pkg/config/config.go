package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes all environment variables consumed by the service.
	EnvPrefix = "hadaya"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Cart    CartConfig
	Catalog CatalogConfig
	Blog    BlogConfig
	Booking BookingConfig
	Theme   ThemeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HADAYA_APP_ENV" default:"dev"`
	Port         string `envconfig:"HADAYA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"HADAYA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HADAYA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path points at the SQLite data file carrying catalog and blog seeds.
	Path        string `envconfig:"HADAYA_DB_PATH" default:"hadaya.db"`
	AutoMigrate bool   `envconfig:"HADAYA_DB_AUTO_MIGRATE" default:"true"`
	AutoSeed    bool   `envconfig:"HADAYA_DB_AUTO_SEED" default:"true"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HADAYA_REDIS_URL"`
	Address      string        `envconfig:"HADAYA_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"HADAYA_REDIS_PASSWORD"`
	DB           int           `envconfig:"HADAYA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HADAYA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HADAYA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HADAYA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HADAYA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HADAYA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	// TTL bounds how long an idle session cart survives in the KV store.
	TTL time.Duration `envconfig:"HADAYA_CART_TTL" default:"720h"`
}

type CatalogConfig struct {
	PageSize int `envconfig:"HADAYA_CATALOG_PAGE_SIZE" default:"6"`
}

type BlogConfig struct {
	PageSize int `envconfig:"HADAYA_BLOG_PAGE_SIZE" default:"6"`
}

type BookingConfig struct {
	// SubmitLatency stands in for the round trip to the fulfilment provider
	// in environments without one wired.
	SubmitLatency  time.Duration `envconfig:"HADAYA_BOOKING_SUBMIT_LATENCY" default:"2s"`
	SubmitTimeout  time.Duration `envconfig:"HADAYA_BOOKING_SUBMIT_TIMEOUT" default:"10s"`
	IdempotencyTTL time.Duration `envconfig:"HADAYA_BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type ThemeConfig struct {
	TTL time.Duration `envconfig:"HADAYA_THEME_TTL" default:"8760h"`
}
