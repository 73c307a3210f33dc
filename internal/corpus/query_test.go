// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"reflect"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single word", "Plato", []string{"plato"}},
		{"two words", "to be", []string{"to", "be"}},
		{"quoted phrase", `"blue eyed" man`, []string{"blue eyed", "man"}},
		{"repeated spaces", "to  be", []string{"to", "be"}},
		{"stray quote", `o"er`, []string{"oer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %#v, want %#v", tt.query, got, tt.want)
			}
		})
	}
}
