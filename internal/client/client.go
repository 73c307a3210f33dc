// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package client submits search forms to a shakesearch server and renders
// the results into a content region.
//
// Each submission takes a generation number. Under the default
// LastIssuedWins ordering a new submission cancels the previous in-flight
// request, and a response that arrives for an older generation is dropped,
// so the region always reflects the most recent submission. LastResolvedWins
// keeps every request alive and lets whichever response arrives last
// overwrite the region.
package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/pdiddy/shakesearch/internal/logger"
	"github.com/pdiddy/shakesearch/internal/render"
	"github.com/pdiddy/shakesearch/pkg/types"
)

// DefaultBaseURL is used when the configuration names no server.
const DefaultBaseURL = "http://localhost:3001"

// Ordering decides which of several overlapping submissions is shown.
type Ordering int

const (
	// LastIssuedWins shows the most recent submission and cancels older ones.
	LastIssuedWins Ordering = iota
	// LastResolvedWins shows whichever response arrives last.
	LastResolvedWins
)

func (o Ordering) String() string {
	switch o {
	case LastIssuedWins:
		return "last-issued"
	case LastResolvedWins:
		return "last-resolved"
	default:
		return "unknown"
	}
}

// Updater renders results into a region.
type Updater interface {
	Update(region render.Region, results []types.SearchResult) error
}

// Submitter handles submit events for one content region.
type Submitter struct {
	http      *http.Client
	baseURL   string
	userAgent string
	updater   Updater
	region    render.Region
	ordering  Ordering

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithHTTPClient replaces the HTTP client built from the configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Submitter) { s.http = hc }
}

// WithOrdering selects how overlapping submissions are resolved.
func WithOrdering(o Ordering) Option {
	return func(s *Submitter) { s.ordering = o }
}

// New returns a Submitter that renders into region with updater.
func New(cfg types.ClientConfig, updater Updater, region render.Region, opts ...Option) *Submitter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	s := &Submitter{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
		updater:   updater,
		region:    region,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HandleSubmit processes one submit event: it suppresses the default
// action, reads the form's query field, fetches results and replaces the
// region's markup. On any error the region keeps its previous markup.
func (s *Submitter) HandleSubmit(ctx context.Context, ev *SubmitEvent) ([]types.SearchResult, error) {
	ev.PreventDefault()

	query, err := queryFrom(ev.Form)
	if err != nil {
		return nil, err
	}

	gen, reqCtx, cancel := s.begin(ctx)
	defer cancel()

	results, err := Fetch(reqCtx, s.http, s.baseURL, s.userAgent, query)
	if err != nil {
		if s.stale(gen) && errors.Is(reqCtx.Err(), context.Canceled) {
			logger.For(ctx).WithField("query", query).Debug("search cancelled by newer submission")
			return nil, ErrSuperseded
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ordering == LastIssuedWins && gen != s.generation {
		logger.For(ctx).WithField("query", query).Debug("dropping stale search response")
		return nil, ErrSuperseded
	}
	if err := s.updater.Update(s.region, results); err != nil {
		return nil, err
	}
	return results, nil
}

// Submit is a convenience wrapper that submits a form holding only query.
func (s *Submitter) Submit(ctx context.Context, query string) ([]types.SearchResult, error) {
	return s.HandleSubmit(ctx, NewSubmitEvent(NewForm(Field{Name: QueryField, Value: query})))
}

// begin registers a new submission and, under LastIssuedWins, cancels the
// one before it.
func (s *Submitter) begin(ctx context.Context) (uint64, context.Context, context.CancelFunc) {
	reqCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	if s.ordering == LastIssuedWins && s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	return s.generation, reqCtx, cancel
}

func (s *Submitter) stale(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordering == LastIssuedWins && gen != s.generation
}

func queryFrom(form *Form) (string, error) {
	if form == nil {
		return "", ErrEmptyQuery
	}
	if form.Count(QueryField) > 1 {
		return "", ErrAmbiguousQuery
	}
	query := form.Params()[QueryField]
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	return query, nil
}
