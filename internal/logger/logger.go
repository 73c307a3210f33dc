// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures logrus and carries request-scoped fields
// through a context.
package logger

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

// RequestIDKey is the context key holding the request ID.
const RequestIDKey ctxKey = "requestId"

// SlowThreshold is the duration above which Track logs at warning level.
var SlowThreshold = 500 * time.Millisecond

// Setup configures the standard logger's output, format and level.
func Setup(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// For returns an entry tagged with the request ID stored in ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("request_id", id)
}

// ContextWithID returns a copy of ctx carrying the request ID.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// IDFrom returns the request ID stored in ctx, or "".
func IDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Track starts a timer and returns a func that logs msg with the elapsed
// duration. Operations slower than SlowThreshold are logged as warnings.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > SlowThreshold {
			entry.Warnf("%s completed (slow)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
