package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/potholeauth/internal/flagx"
	"github.com/dmitrijs2005/potholeauth/internal/timex"
)

// ConfigEnvVar names the environment variable consulted for the JSON config
// path when neither -c nor -config is given.
const ConfigEnvVar = "AUTH_CLIENT_CONFIG"

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep their current value.
type JsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LocalDBPath    *string         `json:"local_db_path"`
	KeyFilePath    *string         `json:"key_file_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath(ConfigEnvVar)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LocalDBPath != nil {
		cfg.LocalDBPath = *jc.LocalDBPath
	}
	if jc.KeyFilePath != nil {
		cfg.KeyFilePath = *jc.KeyFilePath
	}
}
