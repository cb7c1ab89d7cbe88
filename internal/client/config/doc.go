// Package config loads runtime configuration for the Mindful CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. The GEMINI_API_KEY environment variable.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST collaborator
//	-i int      background refetch interval (seconds)
//	-d string   sqlite DSN of the local cache database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5m" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "refetch_interval": "5m",
//	  "cache_dsn": "mindful.db",
//	  "gemini_api_key": "..."
//	}
//
// Primary API
//
//   - type Config                     — runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
