// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	v := viper.New()
	setDefaults(v)

	cfg := loadConfig(v)
	assert.Equal(t, ":3001", cfg.Server.Addr)
	assert.Equal(t, "completeworks.txt", cfg.Corpus.Path)
	assert.Equal(t, 250, cfg.Corpus.Window)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:3001", cfg.Client.BaseURL)
	assert.Equal(t, defaultTimeout, cfg.Client.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.Client.UserAgent)
	assert.Equal(t, "data/searchlog.db", cfg.SearchLog.Path)
}

func TestLoadConfigPortEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, ":8080", loadConfig(v).Server.Addr)
}

func TestLoadConfigAddrOverridesPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	v := viper.New()
	setDefaults(v)
	v.Set("server.addr", "127.0.0.1:9000")

	assert.Equal(t, "127.0.0.1:9000", loadConfig(v).Server.Addr)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
