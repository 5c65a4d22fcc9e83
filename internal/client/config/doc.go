// Package config loads runtime configuration for the auth CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config, or the
//     AUTH_CLIENT_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth server (e.g. http://127.0.0.1:8080)
//	-t int      per-request timeout (seconds)
//	-l string   path of the local secure-store database
//	-k string   path of the device key file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "local_db_path": "/home/me/.config/potholeauth/session.db",
//	  "key_file_path": "/home/me/.config/potholeauth/session.key"
//	}
package config
