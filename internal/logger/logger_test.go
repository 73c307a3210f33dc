// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestForCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	ctx := ContextWithID(context.Background(), "abc-123")
	For(ctx).Info("hello")

	assert.Contains(t, buf.String(), "request_id=abc-123")
	assert.Contains(t, buf.String(), "hello")
	assert.Equal(t, "abc-123", IDFrom(ctx))
}

func TestForWithoutID(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	For(context.Background()).Info("plain")

	assert.NotContains(t, buf.String(), "request_id")
	assert.Empty(t, IDFrom(context.Background()))
}

func TestTrackWarnsWhenSlow(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)

	old := SlowThreshold
	SlowThreshold = 0
	defer func() { SlowThreshold = old }()

	done := Track(context.Background(), "search")
	time.Sleep(time.Millisecond)
	done()

	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "search completed (slow)")
}

func TestTrackDebugWhenFast(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true)

	old := SlowThreshold
	SlowThreshold = time.Hour
	defer func() { SlowThreshold = old }()

	Track(context.Background(), "search")()

	assert.Contains(t, buf.String(), "level=debug")
}
