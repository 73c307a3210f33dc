// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"encoding/csv"
	"strings"
)

// ParseQuery splits a free-text query into search terms. Words are
// separated by spaces; words between double quotes form a single phrase
// term. Terms are lower-cased and empty terms are dropped.
//
//	ParseQuery(`"blue eyed" man`) == []string{"blue eyed", "man"}
func ParseQuery(query string) []string {
	query = strings.Join(strings.Fields(strings.ToLower(query)), " ")
	if query == "" {
		return nil
	}

	r := csv.NewReader(strings.NewReader(query))
	r.Comma = ' '
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		fields = strings.Fields(query)
	}

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(strings.ReplaceAll(f, `"`, ""))
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}
