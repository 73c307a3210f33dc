// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for shakesearch: the wire
// record exchanged between the search server and its clients, and the typed
// configuration for each component.
package types

// SearchResult groups every fragment found in one work. It is the element
// type of the JSON array returned by GET /search.
type SearchResult struct {
	// WorkTitle is the title of the work the fragments belong to.
	WorkTitle string `json:"work_title" yaml:"work_title"`

	// Fragments are HTML snippets of text surrounding the matched terms,
	// in the order they appear in the work.
	Fragments []string `json:"fragments" yaml:"fragments"`
}

// FragmentCount returns the total number of fragments across results.
func FragmentCount(results []SearchResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Fragments)
	}
	return n
}
