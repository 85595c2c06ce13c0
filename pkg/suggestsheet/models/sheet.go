package models

// SheetLayout describes where each column role lives in a sheet.
type SheetLayout struct {
	// HeaderRow is the header row index (1-based).
	HeaderRow int `json:"header_row"`
	// KeywordCol is the keyword column index (1-based).
	KeywordCol int `json:"keyword_col"`
	// LongestCol is the longest-suggestion column index (1-based).
	LongestCol int `json:"longest_col"`
	// ShortestCol is the shortest-suggestion column index (1-based).
	ShortestCol int `json:"shortest_col"`
	// Created lists the header labels appended during this run.
	Created []string `json:"created,omitempty"`
}

// SheetResult reports what happened to a single sheet.
type SheetResult struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Layout is the resolved column layout.
	Layout SheetLayout `json:"layout"`
	// Processed counts rows whose keyword was looked up.
	Processed int `json:"processed"`
	// Skipped counts rows below the header with an empty or "none" keyword.
	Skipped int `json:"skipped"`
	// Empty counts looked-up rows that produced no suggestions.
	Empty int `json:"empty"`
	// SaveFailures counts per-row checkpoints that could not be written.
	SaveFailures int `json:"save_failures"`
}
