// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/shakesearch/internal/client"
	"github.com/pdiddy/shakesearch/internal/corpus"
	"github.com/pdiddy/shakesearch/internal/searchlog"
	"github.com/pdiddy/shakesearch/pkg/types"
)

const (
	defaultPort      = "3001"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "shakesearch/0.1"
)

func setDefaults(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("corpus.path", "completeworks.txt")
	v.SetDefault("corpus.window", corpus.DefaultWindow)
	v.SetDefault("corpus.max_fragments", 0)

	v.SetDefault("render.trusted", false)

	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	// PORT is honoured for platforms that assign the listen port.
	v.BindEnv("server.port", "PORT")
	v.SetDefault("server.port", defaultPort)

	v.SetDefault("client.base_url", client.DefaultBaseURL)
	v.SetDefault("client.timeout", defaultTimeout)
	v.SetDefault("client.user_agent", defaultUserAgent)

	v.SetDefault("search_log.path", searchlog.DefaultPath)
	v.SetDefault("search_log.max_results", 20)
}

// loadConfig assembles the typed configuration from viper.
func loadConfig(v *viper.Viper) types.Config {
	addr := v.GetString("server.addr")
	if addr == "" {
		addr = ":" + v.GetString("server.port")
	}

	return types.Config{
		Corpus: types.CorpusConfig{
			Path:         v.GetString("corpus.path"),
			Window:       v.GetInt("corpus.window"),
			MaxFragments: v.GetInt("corpus.max_fragments"),
		},
		Render: types.RenderConfig{
			Trusted: v.GetBool("render.trusted"),
		},
		Server: types.ServerConfig{
			Addr:            addr,
			RateLimit:       v.GetFloat64("server.rate_limit"),
			RateBurst:       v.GetInt("server.rate_burst"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			Debug:           v.GetBool("server.debug"),
		},
		Client: types.ClientConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("client.timeout"),
				UserAgent: v.GetString("client.user_agent"),
			},
			BaseURL: v.GetString("client.base_url"),
		},
		SearchLog: types.SearchLogConfig{
			Path:       v.GetString("search_log.path"),
			MaxResults: v.GetInt("search_log.max_results"),
		},
	}
}
