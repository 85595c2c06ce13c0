package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		aliases  []string
		expected int
		ok       bool
	}{
		{"alias substring", []string{"Keyword", "Longest Option", "Notes"}, LongestAliases, 1, true},
		{"no match", []string{"A", "B"}, LongestAliases, -1, false},
		{"no match keyword", []string{"A", "B"}, KeywordAliases, -1, false},
		{"case insensitive", []string{"notes", "SHORTEST"}, ShortestAliases, 1, true},
		{"first match wins", []string{"longest", "Longest Option"}, LongestAliases, 0, true},
		{"skips empty headers", []string{"", "", "My Keyword List"}, KeywordAliases, 2, true},
		{"empty headers", nil, KeywordAliases, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := ResolveColumn(tt.headers, tt.aliases)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected int
		ok       bool
	}{
		{"first row", [][]string{{"Keyword"}, {"shoes"}}, 0, true},
		{"after title rows", [][]string{{"Report"}, {}, {"id", "KEYWORDS"}, {"keyword again"}}, 2, true},
		{"missing", [][]string{{"A", "B"}, {"1", "2"}}, -1, false},
		{"empty sheet", nil, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := FindHeaderRow(tt.rows)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, idx)
		})
	}
}
