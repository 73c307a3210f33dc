// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pdiddy/shakesearch/pkg/types"
)

// SearchEndpoint is the path of the JSON search API.
const SearchEndpoint = "/search"

// maxBodySize bounds the response body read into memory.
const maxBodySize = 32 << 20

const resultSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["work_title", "fragments"],
		"properties": {
			"work_title": {"type": "string"},
			"fragments": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

var resultSchema = mustSchema(resultSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("compiling result schema: %v", err))
	}
	return schema
}

// SearchPath returns the request path for query, percent-encoding the
// value: SearchPath("plato") == "/search?q=plato".
func SearchPath(query string) string {
	return SearchEndpoint + "?q=" + url.QueryEscape(query)
}

// Fetch issues one GET for query against baseURL and decodes the results.
// It does not retry.
func Fetch(ctx context.Context, hc *http.Client, baseURL, userAgent, query string) ([]types.SearchResult, error) {
	target := strings.TrimRight(baseURL, "/") + SearchPath(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrStatus, resp.StatusCode, snippet(body))
	}

	return Decode(body)
}

// Decode parses a search response body, distinguishing bodies that are not
// JSON from JSON that is not a list of results.
func Decode(body []byte) ([]types.SearchResult, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedBody, snippet(body))
	}

	res, err := resultSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, strings.Join(msgs, "; "))
	}

	var results []types.SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	return results, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}
