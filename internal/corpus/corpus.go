// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads a complete-works text file, splits it into works and
// answers keyword queries with fragments of the surrounding text.
//
// The file format uses two marker runes: WorkSeparator starts a new work
// whose first line is its title, and SectionSeparator marks sections inside
// a work (currently stripped).
package corpus

import (
	"fmt"
	"index/suffixarray"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/shakesearch/pkg/types"
)

const (
	WorkSeparator    = "►"
	SectionSeparator = "☞"

	// DefaultWindow is the context kept on each side of a hit, in bytes.
	DefaultWindow = 250
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// Work is one titled work of the corpus with its search index.
type Work struct {
	Title string
	Text  string

	// index is built over a lower-cased copy of Text with identical byte
	// offsets, so hit offsets can be used to slice Text directly.
	index *suffixarray.Index
}

// NewWork builds the search index for a single work.
func NewWork(title, text string) Work {
	return Work{
		Title: title,
		Text:  text,
		index: suffixarray.New(lowerSameWidth(text)),
	}
}

// Index holds every work of a corpus in file order.
type Index struct {
	Works        []Work
	window       int
	maxFragments int
}

// Load reads the corpus file named by cfg.Path and indexes it.
func Load(cfg types.CorpusConfig) (*Index, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	defer f.Close()
	return Read(f, cfg)
}

// Read parses a corpus from r. Text before the first WorkSeparator is front
// matter and is dropped.
func Read(r io.Reader, cfg types.CorpusConfig) (*Index, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}

	idx := &Index{window: window, maxFragments: cfg.MaxFragments}

	parts := strings.Split(string(data), WorkSeparator)
	for _, raw := range parts[1:] {
		raw = strings.ReplaceAll(raw, SectionSeparator, "")
		loc := lineBreak.FindStringIndex(raw)
		if loc == nil {
			// A title with no body has nothing to search.
			continue
		}
		title := strings.TrimSpace(raw[:loc[0]])
		if title == "" {
			continue
		}
		idx.Works = append(idx.Works, NewWork(title, raw[loc[0]:]))
	}

	if len(idx.Works) == 0 {
		return nil, fmt.Errorf("corpus contains no works (expected %q separators)", WorkSeparator)
	}
	return idx, nil
}

// Window returns the context size used when cutting fragments.
func (ix *Index) Window() int { return ix.window }

// Search queries every work for the given terms and returns one result per
// work that has at least one hit, in corpus order. The returned slice is
// never nil so that it encodes as an empty JSON array.
func (ix *Index) Search(terms []string) []types.SearchResult {
	results := []types.SearchResult{}
	for i := range ix.Works {
		fragments := ix.Works[i].Search(terms, ix.window)
		if len(fragments) == 0 {
			continue
		}
		if ix.maxFragments > 0 && len(fragments) > ix.maxFragments {
			fragments = fragments[:ix.maxFragments]
		}
		results = append(results, types.SearchResult{
			WorkTitle: ix.Works[i].Title,
			Fragments: fragments,
		})
	}
	return results
}

// Search returns formatted fragments around every occurrence of any term.
// Hits closer than window bytes share a fragment.
func (w *Work) Search(terms []string, window int) []string {
	var offsets []int
	for _, term := range terms {
		if term == "" {
			continue
		}
		offsets = append(offsets, w.index.Lookup(lowerSameWidth(term), -1)...)
	}
	if len(offsets) == 0 {
		return nil
	}
	slices.Sort(offsets)
	offsets = slices.Compact(offsets)

	var fragments []string
	for _, c := range chunk(offsets, window) {
		start := max(c.first-window, 0)
		end := min(c.last+window, len(w.Text))
		fragments = append(fragments, Format(w.Text[start:end]))
	}
	return fragments
}

// lowerSameWidth lower-cases s, leaving alone any rune whose lower-case form
// has a different UTF-8 length so that byte offsets are preserved.
func lowerSameWidth(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		l := unicode.ToLower(r)
		if r == utf8.RuneError || utf8.RuneLen(l) != size {
			out = append(out, s[i:i+size]...)
		} else {
			out = utf8.AppendRune(out, l)
		}
		i += size
	}
	return out
}
