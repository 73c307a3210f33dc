// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns search results into HTML and writes it into a
// content region. Titles are always escaped. Fragments are sanitised down
// to inline text formatting unless the renderer is configured as trusted.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/shakesearch/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders result blocks and full search pages.
type Renderer struct {
	tmpl    *template.Template
	policy  *bluemonday.Policy
	trusted bool
}

// New parses the embedded templates and builds the fragment policy.
func New(cfg types.RenderConfig) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{
		tmpl:    tmpl,
		policy:  FragmentPolicy(),
		trusted: cfg.Trusted,
	}, nil
}

// FragmentPolicy allows the inline elements the corpus formatter and
// highlighters emit and strips everything else.
func FragmentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "b", "i", "em", "strong", "mark")
	return p
}

type resultView struct {
	Title     string
	Fragments []template.HTML
}

func (r *Renderer) views(results []types.SearchResult) []resultView {
	views := make([]resultView, 0, len(results))
	for _, res := range results {
		v := resultView{
			Title:     res.WorkTitle,
			Fragments: make([]template.HTML, 0, len(res.Fragments)),
		}
		for _, f := range res.Fragments {
			if !r.trusted {
				f = r.policy.Sanitize(f)
			}
			v.Fragments = append(v.Fragments, template.HTML(f))
		}
		views = append(views, v)
	}
	return views
}

// Render returns one heading per result followed by one card per fragment,
// in the order received. An empty slice renders as empty markup.
func (r *Renderer) Render(results []types.SearchResult) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "results", r.views(results)); err != nil {
		return "", fmt.Errorf("rendering results: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Update renders results and replaces the region's markup. The region is
// left untouched when rendering fails.
func (r *Renderer) Update(region Region, results []types.SearchResult) error {
	markup, err := r.Render(results)
	if err != nil {
		return err
	}
	region.Replace(markup)
	return nil
}

// Page holds the data for a full search page.
type Page struct {
	Query   string
	Error   string
	Content template.HTML
}

// WritePage writes the search page with the form and content region. The
// content is expected to come from Render or a Buffer.
func (r *Renderer) WritePage(w io.Writer, p Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
