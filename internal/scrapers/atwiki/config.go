package atwiki

const DEFAULT_BASE_URL = "https://w.atwiki.jp/gcmatome/"

type Config struct {
	// BaseUrl is the root of the wiki, page urls are <base_url>/pages/<id>.html
	BaseUrl           string  `json:"base_url"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	// Burst >= 1, otherwise no request will ever be let through
	Burst            int  `json:"burst"`
	TimeoutSeconds   int  `json:"timeout_seconds"`
	Concurrency      int  `json:"concurrency"`
	CloudflareBypass bool `json:"cloudflare_bypass"`
	// DumpDir, if set, receives every http exchange as a text file.
	DumpDir string `json:"dump_dir"`
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:           DEFAULT_BASE_URL,
		RequestsPerSecond: 2,
		Burst:             2,
		TimeoutSeconds:    30,
		Concurrency:       4,
	}
}

// withDefaults fills every zero field with its default.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.BaseUrl == "" {
		c.BaseUrl = defaults.BaseUrl
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if c.Burst <= 0 {
		c.Burst = defaults.Burst
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaults.Concurrency
	}
	return c
}
