// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/shakesearch/pkg/types"
)

func TestText(t *testing.T) {
	r, err := New(types.RenderConfig{})
	require.NoError(t, err)

	markup, err := r.Render([]types.SearchResult{
		{WorkTitle: "Hamlet", Fragments: []string{"To be<br>or not to be", "the question"}},
		{WorkTitle: "Lear", Fragments: nil},
	})
	require.NoError(t, err)

	got, err := Text(markup)
	require.NoError(t, err)

	want := "Hamlet\n======\n" +
		"\nTo be\nor not to be\n" +
		"\nthe question\n" +
		"\nLear\n====\n"
	assert.Equal(t, want, got)
}

func TestTextEmpty(t *testing.T) {
	got, err := Text("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
