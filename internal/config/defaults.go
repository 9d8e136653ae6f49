package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DriverPostgres selects the PostgreSQL storage backend.
	DriverPostgres = "postgres"
	// DriverSQLite selects the SQLite storage backend.
	DriverSQLite = "sqlite"

	defaultDotEnvFile       = ".env"
	defaultHTTPAddress      = ":5000"
	defaultTokenIssuer      = "go-notes-keeper"
	defaultTokenDuration    = time.Hour
	defaultPasswordHashCost = 12
	defaultAllowedOrigin    = "*"
	defaultLogLevel         = "debug"
	defaultAdapterAddress   = "http://localhost:5000"
	defaultAdapterTimeout   = 10 * time.Second
)

// defaultConfig returns the values used for every field that no other source
// has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:   defaultHTTPAddress,
			AllowedOrigin: defaultAllowedOrigin,
			LogLevel:      defaultLogLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}

var (
	minPasswordHashCost = bcrypt.MinCost
	maxPasswordHashCost = bcrypt.MaxCost
)
