package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mindfulapp/mindful/internal/flagx"
	"github.com/mindfulapp/mindful/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerURL       string         `json:"server_url"`
	GeminiAPIKey    string         `json:"gemini_api_key"`
	RefetchInterval timex.Duration `json:"refetch_interval"`
	CacheDSN        string         `json:"cache_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies fields that were actually present into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> env -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.RefetchInterval.Duration != 0 {
		cfg.RefetchInterval = time.Duration(jc.RefetchInterval.Duration)
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
}
