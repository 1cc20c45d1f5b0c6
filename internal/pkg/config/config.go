package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session backends accepted by SESSION_BACKEND.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
	SessionBackendMongo  = "mongo"
)

// Common holds the settings shared by both processes.
type Common struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// IsDevelopment reports whether human-friendly console logging is wanted.
func (c Common) IsDevelopment() bool {
	return c.Env == "development"
}

// Identity configures the Identity API process.
type Identity struct {
	Common

	Port               string        `env:"PORT,                 default=5100"`
	TokenSigningSecret string        `env:"TOKEN_SIGNING_SECRET"`
	TokenTTL           time.Duration `env:"TOKEN_TTL,            default=1h"`
	CORSAllowOrigins   []string      `env:"CORS_ALLOW_ORIGINS,   default=*"`
}

// Web configures the web frontend process.
type Web struct {
	Common

	Port string `env:"PORT, default=5000"`

	IdentityAPI IdentityAPIConfig
	Session     SessionConfig
	Redis       RedisConfig
	Mongo       MongoConfig
}

type IdentityAPIConfig struct {
	BaseURL string        `env:"IDENTITY_API_BASE_URL, default=http://localhost:5100"`
	Timeout time.Duration `env:"IDENTITY_API_TIMEOUT,  default=10s"`
}

type SessionConfig struct {
	Backend      string        `env:"SESSION_BACKEND,       default=memory"`
	IdleTimeout  time.Duration `env:"SESSION_IDLE_TIMEOUT,  default=30m"`
	CookieName   string        `env:"SESSION_COOKIE_NAME,   default=bidorbuy_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bidorbuy"`
}

// LoadIdentity reads the Identity API configuration from the environment.
func LoadIdentity() *Identity {
	cfg, err := LoadIdentityWith(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWeb reads the web frontend configuration from the environment.
func LoadWeb() *Web {
	cfg, err := LoadWebWith(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadIdentityWith reads the Identity API configuration from l.
func LoadIdentityWith(l envconfig.Lookuper) (*Identity, error) {
	var cfg Identity
	if err := process(&cfg, l); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWebWith reads and validates the web frontend configuration from l.
func LoadWebWith(l envconfig.Lookuper) (*Web, error) {
	var cfg Web
	if err := process(&cfg, l); err != nil {
		return nil, err
	}

	switch cfg.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis, SessionBackendMongo:
	default:
		return nil, fmt.Errorf("config: unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}
	if cfg.Session.IdleTimeout <= 0 {
		return nil, fmt.Errorf("config: SESSION_IDLE_TIMEOUT must be positive")
	}
	return &cfg, nil
}

func process(target any, l envconfig.Lookuper) error {
	return envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   target,
		Lookuper: l,
	})
}
