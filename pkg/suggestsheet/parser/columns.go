package parser

import "strings"

// Column roles and the header aliases that identify them.
var (
	KeywordAliases  = []string{"keyword"}
	LongestAliases  = []string{"longest", "longest option"}
	ShortestAliases = []string{"shortest", "shortest option"}
)

// Labels written when a result column has to be created.
const (
	LongestLabel  = "longest option"
	ShortestLabel = "shortest option"
)

// headerMarker identifies the header row.
const headerMarker = "keyword"

// ResolveColumn returns the 0-based index of the first non-empty header that
// contains any alias, compared case-insensitively. It reports false when no
// header matches.
func ResolveColumn(headers []string, aliases []string) (int, bool) {
	for colIdx, header := range headers {
		if header == "" {
			continue
		}
		lower := strings.ToLower(header)
		for _, alias := range aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return colIdx, true
			}
		}
	}
	return -1, false
}

// FindHeaderRow returns the 0-based index of the first row holding a cell
// whose text contains "keyword" in any case.
func FindHeaderRow(rows [][]string) (int, bool) {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), headerMarker) {
				return rowIdx, true
			}
		}
	}
	return -1, false
}
