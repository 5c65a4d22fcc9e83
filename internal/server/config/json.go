package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/potholeauth/internal/flagx"
	"github.com/dmitrijs2005/potholeauth/internal/timex"
)

// ConfigEnvVar names the environment variable consulted for the JSON config
// path when neither -c nor -config is given.
const ConfigEnvVar = "AUTH_SERVER_CONFIG"

// JsonConfig is the on-disk shape of the server configuration.
// Durations accept "15s"-style strings or integer nanoseconds.
// Fields left out of the file keep their current value.
type JsonConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	PasswordHasher        *string         `json:"password_hasher"`
	BcryptCost            *int            `json:"bcrypt_cost"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson overlays config with values from the JSON file named by -c,
// -config or AUTH_SERVER_CONFIG. It panics if the file cannot be read or
// parsed; a missing path means nothing to load.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFilePath(ConfigEnvVar)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.PasswordHasher, c.PasswordHasher)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.LogLevel, c.LogLevel)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
