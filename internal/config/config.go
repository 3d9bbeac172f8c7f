package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:5000"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Redis    Redis
	Security Security
	Cache    Cache
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// DSN renders the keyword/value connection string understood by pgx and
// the pgx stdlib driver.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis holds cache configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for signing and auth. An empty EditorJWTSecret
// leaves question create/delete open.
type Security struct {
	EditorJWTSecret string        `env:"EDITOR_JWT_SECRET" envDefault:""`
	EditorTokenTTL  time.Duration `env:"EDITOR_TOKEN_TTL" envDefault:"24h"`
}

// Cache governs the Redis-backed category cache.
type Cache struct {
	CategoryTTL     time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m"`
	RefreshInterval time.Duration `env:"CATEGORY_CACHE_REFRESH" envDefault:"1m"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,PUT,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Signing is the subset of App needed to mint editor tokens offline.
type Signing struct {
	Name     string `env:"APP_NAME" envDefault:"trivia-api"`
	Security Security
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	return parse[App]()
}

// LoadPostgres parses only the Postgres group, for tools that never touch
// Redis or serve HTTP.
func LoadPostgres() (*Postgres, error) {
	return parse[Postgres]()
}

// LoadSigning parses the app name and Security group.
func LoadSigning() (*Signing, error) {
	return parse[Signing]()
}

func parse[T any]() (*T, error) {
	cfg := new(T)
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
