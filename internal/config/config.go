package config

import (
	"fmt"
	"net/url"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// food-bridge application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database backend.
	Storage Storage `envPrefix:""`

	// Server holds network address, timeout, and static-asset settings for
	// the HTTP server.
	Server Server `envPrefix:""`

	// Payment holds credentials and endpoint settings for the IntaSend
	// mobile-money collection API.
	Payment Payment `envPrefix:"INTASEND_"`

	// Oracle holds credentials and endpoint settings for the scoring
	// oracle (an OpenAI-compatible chat-completions API).
	Oracle Oracle `envPrefix:""`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the persistence backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values controlling the session
// token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign JWT session tokens
	// issued on login. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and asset-serving settings for the inbound HTTP layer.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// ShutdownTimeout bounds how long in-flight requests may drain during
	// graceful shutdown. In-flight requests themselves are never timed
	// out; a hanging oracle call stalls only its own request.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// PublicDir is the directory of static frontend assets served at "/".
	// Env: PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`
}

// DB holds connection settings for the relational database backend.
// The settings are combined into a pgx DSN by [DB.DSN].
type DB struct {
	// Host is the database server hostname.
	// Env: DB_HOST
	Host string `env:"HOST"`

	// Port is the database server port.
	// Env: DB_PORT
	Port int `env:"PORT"`

	// User is the database role to connect as.
	// Env: DB_USER
	User string `env:"USER"`

	// Password is the database role's password.
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name.
	// Env: DB_NAME
	Name string `env:"NAME"`

	// SSLMode is the libpq sslmode parameter. The hosted cluster the
	// application targets requires TLS, so the default is "require".
	// Env: DB_SSLMODE
	SSLMode string `env:"SSLMODE"`
}

// DSN assembles the PostgreSQL connection string from the individual
// settings. User and password are URL-escaped so credentials containing
// reserved characters survive the round trip.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
}

// Payment holds credentials and endpoint settings for the mobile-money
// collection gateway.
type Payment struct {
	// BaseURL is the root URL of the IntaSend API.
	// Env: INTASEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// PublicKey is the IntaSend publishable key sent in request bodies.
	// Env: INTASEND_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY"`

	// PrivateKey is the IntaSend secret key used as the bearer credential.
	// Must be kept confidential.
	// Env: INTASEND_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// Currency is the fixed ISO currency code for all charges.
	// Env: INTASEND_CURRENCY
	Currency string `env:"CURRENCY"`
}

// Oracle holds credentials and endpoint settings for the language-model
// scoring oracle.
type Oracle struct {
	// BaseURL is the root URL of the chat-completions API.
	// Env: OPENAI_BASE_URL
	BaseURL string `env:"OPENAI_BASE_URL"`

	// APIKey is the bearer credential for the oracle API.
	// Must be kept confidential.
	// Env: OPENAI_API_KEY
	APIKey string `env:"OPENAI_API_KEY"`

	// Model is the completion model asked to rate each pairing.
	// Env: OPENAI_MODEL
	Model string `env:"OPENAI_MODEL"`

	// MaxConcurrent caps how many oracle calls may be in flight for one
	// food item. 1 reproduces the fully sequential reference behaviour.
	// Env: ORACLE_MAX_CONCURRENT
	MaxConcurrent int `env:"ORACLE_MAX_CONCURRENT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.Host == "" || cfg.Storage.DB.Name == "" || cfg.Storage.DB.User == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
