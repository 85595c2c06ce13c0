// Package models defines data structures shared by the suggestion pipeline.
package models

// KeywordRow is a data row that carries a keyword to look up.
type KeywordRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// Keyword is the trimmed keyword cell text.
	Keyword string `json:"keyword"`
}

// Suggestions is the result of one autocomplete lookup.
// Both fields are empty when no suggestion qualified.
type Suggestions struct {
	// Longest is the longest suggestion text.
	Longest string `json:"longest"`
	// Shortest is the shortest suggestion text.
	Shortest string `json:"shortest"`
}

// Empty reports whether the lookup produced nothing.
func (s Suggestions) Empty() bool {
	return s.Longest == "" && s.Shortest == ""
}
