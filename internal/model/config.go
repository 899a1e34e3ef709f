package model

import "time"

// Config is the complete application configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Server      ServerConfig      `yaml:"server"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Trust       TrustConfig       `yaml:"trust"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound article fetching
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// ServerConfig controls the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// CacheConfig controls the fetched-article cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir"` // empty disables the disk layer
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch workers and fetch rate limiting
type ConcurrencyConfig struct {
	BatchWorkers int     `yaml:"batch_workers"`
	FetchRate    float64 `yaml:"fetch_rate"` // requests per second per domain
	FetchBurst   int     `yaml:"fetch_burst"`
}

// TrustConfig holds the domain trust tiers. Lookup is by substring match on
// the lower-cased host; the first matching tier wins.
type TrustConfig struct {
	HighTrust     []string `yaml:"high_trust"`     // +0.4
	ModerateTrust []string `yaml:"moderate_trust"` // +0.25
	LowTrust      []string `yaml:"low_trust"`      // -0.2
}

// LLMConfig controls the optional post-scoring summarizer
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // environment only, never serialized
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Veracity/0.1 (+https://github.com/credlab/veracity)",
			MaxBodyBytes: 2_000_000,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
			FetchRate:    2,
			FetchBurst:   5,
		},
		Trust: TrustConfig{
			HighTrust: []string{
				"nasa.gov", "nature.com", "science.org", "who.int",
				"cdc.gov", "nih.gov", ".edu", "weather.gov", "noaa.gov",
			},
			ModerateTrust: []string{
				"weather.com", "reuters.com", "apnews.com", "bbc.com",
				"npr.org", "sciencedaily.com", "scientificamerican.com",
			},
			LowTrust: []string{
				"theonion.com", "tmz.com",
			},
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "gpt-4o-mini",
			MaxTokens: 500,
		},
	}
}
