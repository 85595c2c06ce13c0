package models

// RunResult represents a workbook-level container with per-sheet results.
type RunResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds results in workbook order. Skipped sheets are absent.
	Sheets []SheetResult `json:"sheets"`
	// SkippedSheets lists sheets that had no usable header.
	SkippedSheets []string `json:"skipped_sheets,omitempty"`
}
