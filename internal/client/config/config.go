// Package config handles configuration for the wishlist client, layered as
// defaults, then an optional JSON file, then command-line flags.
package config

// Config holds runtime settings for the wishlist CLI.
//
// Fields:
//   - APIBaseURL: root of the remote wishlist API, no trailing slash.
//   - DatabaseDSN: path/DSN of the local sqlite database (session + cache).
//   - ShareBaseURL: public site root used to render share links.
type Config struct {
	APIBaseURL   string
	DatabaseDSN  string
	ShareBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.wetrippo.com/api"
	c.DatabaseDSN = "wishlist.db"
	c.ShareBaseURL = "https://wishlist.wetrippo.com"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
