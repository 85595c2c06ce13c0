// Package parser provides sheet and page parsing utilities.
package parser

import (
	"strings"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
	"github.com/xuri/excelize/v2"
)

// skipKeyword is the placeholder text that marks a row without a keyword.
const skipKeyword = "none"

// ReadRows returns every row of a sheet as formatted cell text.
// Trailing empty cells are trimmed by excelize, so rows may differ in length.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName)
}

// ExtractKeywordRows extracts keyword rows below the header row.
// headerIdx and keywordCol are 0-based. It returns rows that carry a keyword
// and the number of rows that were skipped because the keyword cell was empty
// or held the "none" placeholder.
func ExtractKeywordRows(rows [][]string, headerIdx, keywordCol int) ([]models.KeywordRow, int) {
	var result []models.KeywordRow
	skipped := 0

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		keyword, ok := KeywordCell(rows[rowIdx], keywordCol)
		if !ok {
			skipped++
			continue
		}
		result = append(result, models.KeywordRow{
			R:       rowIdx + 1, // 1-based row index
			Keyword: keyword,
		})
	}

	return result, skipped
}

// KeywordCell returns the trimmed keyword in column col of row.
// It reports false for missing, empty, or "none" (any case) cells.
func KeywordCell(row []string, col int) (string, bool) {
	if col < 0 || col >= len(row) {
		return "", false
	}
	keyword := strings.TrimSpace(row[col])
	if keyword == "" || strings.EqualFold(keyword, skipKeyword) {
		return "", false
	}
	return keyword, true
}

// DataWidth returns the number of columns spanned by the widest row.
// Empty trailing cells are not counted.
func DataWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		last := lastNonEmpty(row)
		if last+1 > width {
			width = last + 1
		}
	}
	return width
}

// lastNonEmpty returns the index of the last non-empty cell, or -1.
func lastNonEmpty(row []string) int {
	for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
		if row[colIdx] != "" {
			return colIdx
		}
	}
	return -1
}
