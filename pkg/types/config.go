// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "shakesearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CorpusConfig holds settings for loading and searching the works corpus.
type CorpusConfig struct {
	// Path is the complete works text file (default "completeworks.txt").
	Path string `json:"path" yaml:"path"`

	// Window is the number of bytes of context kept on each side of a hit
	// (default 250). Hits closer than Window are merged into one fragment.
	Window int `json:"window" yaml:"window"`

	// MaxFragments caps the fragments returned per work. Zero means unlimited.
	MaxFragments int `json:"max_fragments" yaml:"max_fragments"`
}

// RenderConfig holds settings for the result renderer.
type RenderConfig struct {
	// Trusted inserts fragments verbatim instead of sanitising them.
	// Only enable for corpora whose fragments are known to be safe.
	Trusted bool `json:"trusted" yaml:"trusted"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":3001").
	Addr string `json:"addr" yaml:"addr"`

	// RateLimit is the sustained number of requests per second accepted by
	// the server. Zero or negative disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// RateBurst is the token bucket size (default 20).
	RateBurst int `json:"rate_burst" yaml:"rate_burst"`

	// ShutdownTimeout bounds graceful shutdown (default 5s).
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// Debug enables debug-level logging.
	Debug bool `json:"debug" yaml:"debug"`
}

// ClientConfig holds settings for the query submitter.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the search server root (default "http://localhost:3001").
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// SearchLogConfig holds settings for the persisted query log.
type SearchLogConfig struct {
	// Path is the SQLite database file (default "data/searchlog.db").
	// An empty path disables logging.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default number of rows listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all component configurations.
type Config struct {
	Corpus    CorpusConfig    `json:"corpus" yaml:"corpus"`
	Render    RenderConfig    `json:"render" yaml:"render"`
	Server    ServerConfig    `json:"server" yaml:"server"`
	Client    ClientConfig    `json:"client" yaml:"client"`
	SearchLog SearchLogConfig `json:"search_log" yaml:"search_log"`
}
