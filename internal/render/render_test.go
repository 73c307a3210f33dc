// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/shakesearch/pkg/types"
)

const card = `<div class="card border-dark mb-3"><div class="card-body">%s</div></div>`

func newRenderer(t *testing.T, trusted bool) *Renderer {
	t.Helper()
	r, err := New(types.RenderConfig{Trusted: trusted})
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, markup template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	require.NoError(t, err)
	return doc
}

func TestRenderSingleResult(t *testing.T) {
	r := newRenderer(t, false)

	markup, err := r.Render([]types.SearchResult{
		{WorkTitle: "Republic", Fragments: []string{"frag1", "frag2"}},
	})
	require.NoError(t, err)

	want := "<h3>Republic</h3>" +
		strings.Replace(card, "%s", "frag1", 1) + "\n" +
		strings.Replace(card, "%s", "frag2", 1)
	assert.Equal(t, want, string(markup))
}

func TestRenderEmpty(t *testing.T) {
	r := newRenderer(t, false)

	markup, err := r.Render([]types.SearchResult{})
	require.NoError(t, err)
	assert.Empty(t, markup)

	markup, err = r.Render(nil)
	require.NoError(t, err)
	assert.Empty(t, markup)
}

func TestRenderOrderAndZeroFragments(t *testing.T) {
	r := newRenderer(t, false)

	markup, err := r.Render([]types.SearchResult{
		{WorkTitle: "A", Fragments: []string{"x"}},
		{WorkTitle: "B", Fragments: []string{}},
	})
	require.NoError(t, err)

	want := "<h3>A</h3>" + strings.Replace(card, "%s", "x", 1) + "\n<h3>B</h3>"
	assert.Equal(t, want, string(markup))

	doc := parse(t, markup)
	headings := doc.Find("h3")
	require.Equal(t, 2, headings.Length())
	assert.Equal(t, "A", headings.Eq(0).Text())
	assert.Equal(t, "B", headings.Eq(1).Text())
	assert.Equal(t, 1, doc.Find(".card").Length())
	assert.Equal(t, 0, headings.Eq(1).NextAll().Length())
}

func TestRenderIsIdempotent(t *testing.T) {
	r := newRenderer(t, false)
	results := []types.SearchResult{
		{WorkTitle: "Hamlet", Fragments: []string{"to be<br>or not"}},
	}

	var region Buffer
	require.NoError(t, r.Update(&region, results))
	first := region.Markup()
	require.NoError(t, r.Update(&region, results))

	assert.Equal(t, first, region.Markup())
	assert.Equal(t, 2, region.Replaced())
}

func TestRenderEscapesTitle(t *testing.T) {
	r := newRenderer(t, true)

	markup, err := r.Render([]types.SearchResult{
		{WorkTitle: `<script>alert("t")</script>`, Fragments: nil},
	})
	require.NoError(t, err)

	assert.NotContains(t, string(markup), "<script>")
	assert.Equal(t, `<script>alert("t")</script>`, parse(t, markup).Find("h3").Text())
}

func TestRenderSanitisesFragments(t *testing.T) {
	r := newRenderer(t, false)

	markup, err := r.Render([]types.SearchResult{
		{WorkTitle: "T", Fragments: []string{
			`line<br>next <b>bold</b><script>alert(1)</script><img src=x onerror=alert(1)>`,
		}},
	})
	require.NoError(t, err)

	doc := parse(t, markup)
	body := doc.Find(".card-body")
	require.Equal(t, 1, body.Length())
	assert.Equal(t, 1, body.Find("br").Length())
	assert.Equal(t, "bold", body.Find("b").Text())
	assert.Equal(t, 0, body.Find("script").Length())
	assert.Equal(t, 0, body.Find("img").Length())
}

func TestRenderTrustedKeepsFragmentsVerbatim(t *testing.T) {
	r := newRenderer(t, true)
	frag := `<span class="hit">plato</span>`

	markup, err := r.Render([]types.SearchResult{{WorkTitle: "T", Fragments: []string{frag}}})
	require.NoError(t, err)
	assert.Contains(t, string(markup), frag)
}

func TestUpdateReplacesWholeRegion(t *testing.T) {
	r := newRenderer(t, false)
	var region Buffer

	require.NoError(t, r.Update(&region, []types.SearchResult{{WorkTitle: "Old", Fragments: []string{"a"}}}))
	require.NoError(t, r.Update(&region, []types.SearchResult{{WorkTitle: "New"}}))

	assert.Equal(t, "<h3>New</h3>", region.String())

	require.NoError(t, r.Update(&region, nil))
	assert.Empty(t, region.String())
}

func TestBufferConcurrentReplace(t *testing.T) {
	var region Buffer
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			region.Replace("<h3>x</h3>")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, region.Replaced())
	assert.Equal(t, template.HTML("<h3>x</h3>"), region.Markup())
}

func TestWritePage(t *testing.T) {
	r := newRenderer(t, false)
	content, err := r.Render([]types.SearchResult{{WorkTitle: "Hamlet", Fragments: []string{"to be"}}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WritePage(&buf, Page{Query: `"to be"`, Content: content}))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	form := doc.Find("#form")
	require.Equal(t, 1, form.Length())
	val, ok := form.Find(`input[name="query"]`).Attr("value")
	require.True(t, ok)
	assert.Equal(t, `"to be"`, val)
	assert.Equal(t, "Hamlet", doc.Find("#content h3").Text())
	assert.Equal(t, 0, doc.Find(".alert").Length())
}

func TestWritePageError(t *testing.T) {
	r := newRenderer(t, false)

	var buf bytes.Buffer
	require.NoError(t, r.WritePage(&buf, Page{Query: "x", Error: "search failed"}))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "search failed", doc.Find(".alert").Text())
	assert.Empty(t, strings.TrimSpace(doc.Find("#content").Text()))
}
