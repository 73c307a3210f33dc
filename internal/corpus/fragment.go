// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"html"
	"strings"
)

// HTMLLineBreak replaces source line breaks inside fragments.
const HTMLLineBreak = "<br>"

// span is a run of hit offsets that sit within one window of each other.
type span struct {
	first, last int
}

// chunk groups sorted offsets so that repeated hits of a frequent term do
// not produce overlapping fragments. A new span starts when the gap to the
// next offset exceeds window.
func chunk(offsets []int, window int) []span {
	if len(offsets) == 0 {
		return nil
	}
	spans := []span{{first: offsets[0], last: offsets[0]}}
	for _, off := range offsets[1:] {
		cur := &spans[len(spans)-1]
		if off-cur.last > window {
			spans = append(spans, span{first: off, last: off})
			continue
		}
		cur.last = off
	}
	return spans
}

// Format turns a raw slice of corpus text into an HTML snippet: the first
// and last lines, which are usually cut mid-line, are dropped; the text is
// escaped; line breaks become <br>; leading and trailing breaks are removed.
func Format(raw string) string {
	first := lineBreak.FindStringIndex(raw)
	if first != nil {
		all := lineBreak.FindAllStringIndex(raw, -1)
		last := all[len(all)-1]
		if first[0] < last[0] {
			raw = raw[first[0]:last[0]]
		}
	}

	escaped := html.EscapeString(raw)
	formatted := lineBreak.ReplaceAllString(escaped, HTMLLineBreak)
	return trimBreaks(formatted)
}

func trimBreaks(s string) string {
	for {
		t := strings.TrimSpace(s)
		t = strings.TrimPrefix(t, HTMLLineBreak)
		t = strings.TrimSuffix(t, HTMLLineBreak)
		if t == s {
			return t
		}
		s = t
	}
}
