package config

import (
	"encoding/json"
	"os"

	"github.com/wetrippo/wishlist/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config after parsing.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	DatabaseDSN  string `json:"database_dsn"`
	ShareBaseURL string `json:"share_base_url"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. With no path, nothing is loaded. Read or
// unmarshal errors panic (caller may recover if desired). Only non-empty
// JSON fields overwrite the config, so partial files compose with defaults.
func parseJson(cfg *Config) {
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ShareBaseURL != "" {
		cfg.ShareBaseURL = jc.ShareBaseURL
	}
}
