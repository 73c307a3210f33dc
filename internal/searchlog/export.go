// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package searchlog

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// Export is the document written by ExportYAML.
type Export struct {
	Top     []QueryCount `yaml:"top"`
	Queries []Entry      `yaml:"queries"`
}

// ExportYAML writes every logged query, newest first, together with the
// most frequent queries.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	top, err := s.Top(ctx, s.maxResults)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Export{Top: top, Queries: entries}); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
