// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package searchlog

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/shakesearch/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.SearchLogConfig{
		Path:       filepath.Join(t.TempDir(), "log", "searchlog.db"),
		MaxResults: 10,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(t *testing.T, s *Store, query string, at time.Time) {
	t.Helper()
	require.NoError(t, s.Record(context.Background(), Entry{
		Query:     query,
		Terms:     []string{query},
		Works:     2,
		Fragments: 5,
		Duration:  42 * time.Millisecond,
		CreatedAt: at,
	}))
}

func TestRecordAndRecent(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	record(t, s, "plato", base)
	record(t, s, "hamlet", base.Add(time.Minute))

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "hamlet", entries[0].Query)
	assert.Equal(t, "plato", entries[1].Query)
	assert.Equal(t, []string{"hamlet"}, entries[0].Terms)
	assert.Equal(t, 2, entries[0].Works)
	assert.Equal(t, 5, entries[0].Fragments)
	assert.Equal(t, 42*time.Millisecond, entries[0].Duration)
	assert.True(t, entries[0].CreatedAt.Equal(base.Add(time.Minute)))
}

func TestRecentLimit(t *testing.T) {
	s := testStore(t)
	base := time.Now()
	for i := 0; i < 15; i++ {
		record(t, s, "q", base.Add(time.Duration(i)*time.Second))
	}

	entries, err := s.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 10, "zero limit uses the configured default")
}

func TestRecordDefaultsCreatedAt(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Record(context.Background(), Entry{Query: "lear"}))

	entries, err := s.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.WithinDuration(t, time.Now(), entries[0].CreatedAt, time.Minute)
}

func TestTop(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	record(t, s, "plato", base)
	record(t, s, "hamlet", base.Add(1*time.Minute))
	record(t, s, "plato", base.Add(2*time.Minute))
	record(t, s, "lear", base.Add(3*time.Minute))

	top, err := s.Top(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "plato", top[0].Query)
	assert.Equal(t, 2, top[0].Count)
	assert.True(t, top[0].LastSeen.Equal(base.Add(2*time.Minute)))
	// hamlet and lear tie on count; the most recent comes first.
	assert.Equal(t, "lear", top[1].Query)
	assert.Equal(t, "hamlet", top[2].Query)
}

func TestEmptyLog(t *testing.T) {
	s := testStore(t)

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	top, err := s.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlog.db")
	s, err := Open(types.SearchLogConfig{Path: path})
	require.NoError(t, err)
	record(t, s, "plato", time.Now())
	require.NoError(t, s.Close())

	s, err = Open(types.SearchLogConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record(t, s, "plato", base)
	record(t, s, "plato", base.Add(time.Minute))

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(context.Background(), &buf))

	var doc Export
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Queries, 2)
	require.Len(t, doc.Top, 1)
	assert.Equal(t, 2, doc.Top[0].Count)
}
