// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/shakesearch/internal/corpus"
	"github.com/pdiddy/shakesearch/internal/logger"
	"github.com/pdiddy/shakesearch/internal/render"
	"github.com/pdiddy/shakesearch/internal/searchlog"
	"github.com/pdiddy/shakesearch/pkg/types"
)

const missingQueryMsg = "missing search query in URL params"

// queryParam returns the first non-empty q parameter.
func queryParam(r *http.Request) (string, bool) {
	q, ok := r.URL.Query()["q"]
	if !ok || len(q[0]) < 1 {
		return "", false
	}
	return q[0], true
}

// search runs query against the index and records it in the search log.
func (s *Server) search(ctx context.Context, query string) []types.SearchResult {
	defer logger.Track(ctx, "search "+query)()
	start := time.Now()

	terms := corpus.ParseQuery(query)
	results := s.index.Search(terms)
	if results == nil {
		results = []types.SearchResult{}
	}
	fragments := types.FragmentCount(results)
	searchResultsTotal.Observe(float64(fragments))

	if s.recorder != nil {
		err := s.recorder.Record(ctx, searchlog.Entry{
			Query:     query,
			Terms:     terms,
			Works:     len(results),
			Fragments: fragments,
			Duration:  time.Since(start),
		})
		if err != nil {
			logger.For(ctx).WithError(err).Warn("search log write failed")
		}
	}
	return results
}

// handleSearch answers GET /search?q= with a JSON array of results.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, ok := queryParam(r)
	if !ok {
		http.Error(w, missingQueryMsg, http.StatusBadRequest)
		return
	}

	results := s.search(r.Context(), query)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(results); err != nil {
		logger.For(r.Context()).WithError(err).Error("encoding results")
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// handleResults answers GET /results?q= with the rendered content region.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	query, ok := queryParam(r)
	if !ok {
		http.Error(w, missingQueryMsg, http.StatusBadRequest)
		return
	}

	markup, err := s.renderer.Render(s.search(r.Context(), query))
	if err != nil {
		logger.For(r.Context()).WithError(err).Error("rendering results")
		http.Error(w, "rendering failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(markup))
}

// handleIndex serves the search page. A query in the URL is answered
// server-side so the page works without JavaScript.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := render.Page{Query: r.URL.Query().Get("query")}

	if strings.TrimSpace(page.Query) != "" {
		var region render.Buffer
		if err := s.renderer.Update(&region, s.search(r.Context(), page.Query)); err != nil {
			logger.For(r.Context()).WithError(err).Error("rendering results")
			page.Error = "Search results could not be displayed."
		}
		page.Content = region.Markup()
	}

	var buf bytes.Buffer
	if err := s.renderer.WritePage(&buf, page); err != nil {
		logger.For(r.Context()).WithError(err).Error("rendering page")
		http.Error(w, "rendering failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
