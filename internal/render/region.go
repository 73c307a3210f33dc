// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"html/template"
	"sync"
)

// Region is a page area whose markup is owned by the renderer. Every
// Replace discards the previous markup entirely.
type Region interface {
	Replace(markup template.HTML)
}

// Buffer is an in-memory Region. It is safe for concurrent use; concurrent
// replacements simply overwrite each other.
type Buffer struct {
	mu       sync.Mutex
	markup   template.HTML
	replaced int
}

// Replace sets the buffer's markup.
func (b *Buffer) Replace(markup template.HTML) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.markup = markup
	b.replaced++
}

// Markup returns the current markup.
func (b *Buffer) Markup() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markup
}

// Replaced returns how many times the markup has been replaced.
func (b *Buffer) Replaced() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.replaced
}

func (b *Buffer) String() string { return string(b.Markup()) }
