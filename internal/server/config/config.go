// Package config handles configuration for the auth server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Empty generates a random one at startup.
//   - TokenValidityDuration: session token lifetime.
//   - PasswordHasher: "bcrypt" or "argon2id".
//   - BcryptCost: work factor for newly created bcrypt hashes.
//   - RequestTimeout: upper bound for a single request, storage calls included.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	PasswordHasher        string
	BcryptCost            int
	RequestTimeout        time.Duration
	LogLevel              string
}

// LoadDefaults populates Config with sensible development defaults. The
// secret key is left empty so the server generates a random one at startup.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.PasswordHasher = "bcrypt"
	c.BcryptCost = 10
	c.RequestTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
