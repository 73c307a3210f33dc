// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text converts rendered result markup to plain text for terminals: each
// heading becomes an underlined title and each card a paragraph with its
// line breaks restored.
func Text(markup template.HTML) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(markup)))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	var b strings.Builder
	doc.Find("h3, .card-body").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "h3" {
			title := strings.TrimSpace(s.Text())
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(title + "\n")
			b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n")
			return
		}
		s.Find("br").Each(func(_ int, br *goquery.Selection) {
			br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
		})
		b.WriteString("\n" + strings.TrimSpace(s.Text()) + "\n")
	})
	return b.String(), nil
}
