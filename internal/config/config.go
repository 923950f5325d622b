// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/votebox/internal/core/domain"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"local"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Cookie   CookieConfig
	// VoteScope is "option" or "poll".
	VoteScope    string `env:"VOTE_SCOPE" envDefault:"option"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" envDefault:"votebox"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// ConnString returns a postgres:// URL for lib/pq and golang-migrate.
func (c PostgresConfig) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DB,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type AuthConfig struct {
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	GoogleClientID  string        `env:"GOOGLE_CLIENT_ID"`
	RedirectURL     string        `env:"AUTH_REDIRECT_URL" envDefault:"http://localhost:5173"`
}

type CookieConfig struct {
	Domain   string `env:"COOKIE_DOMAIN"`
	SameSite string `env:"COOKIE_SAMESITE" envDefault:"lax"`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
}

// SameSiteMode maps the configured value to its http.SameSite constant.
func (c CookieConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, ok := domain.ParseVoteScope(cfg.VoteScope); !ok {
		return nil, fmt.Errorf("invalid VOTE_SCOPE %q", cfg.VoteScope)
	}

	return &cfg, nil
}

// JobConfig is the subset of Config used by the batch binaries, which never
// sign tokens.
type JobConfig struct {
	Env      string `env:"APP_ENV" envDefault:"local"`
	Postgres PostgresConfig
}

// LoadJob reads an optional .env file and parses the database settings.
func LoadJob() (*JobConfig, error) {
	_ = godotenv.Load()

	var cfg JobConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Scope returns the parsed vote scope. Load has already validated it.
func (c *Config) Scope() domain.VoteScope {
	scope, _ := domain.ParseVoteScope(c.VoteScope)
	return scope
}
