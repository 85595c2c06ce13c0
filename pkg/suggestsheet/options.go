// Package suggestsheet fills a workbook with search autocomplete suggestions.
package suggestsheet

// HeaderPlacement selects the row that receives labels for created columns.
type HeaderPlacement string

const (
	// HeaderOnDetectedRow writes new labels on the detected header row.
	HeaderOnDetectedRow HeaderPlacement = "detected"
	// HeaderBelowDetectedRow writes new labels one row below the detected
	// header row, matching workbooks produced by older versions of the tool.
	// That row is usually the first data row, so a keyword there replaces
	// the label with its own results.
	HeaderBelowDetectedRow HeaderPlacement = "below"
)

// Options configures processing behavior.
type Options struct {
	// HeaderPlacement selects where created column labels are written.
	HeaderPlacement HeaderPlacement
	// Sheets limits processing to these sheet names. Empty means all sheets.
	Sheets []string
	// DryRun fetches suggestions and updates the workbook in memory but never
	// writes it to disk.
	DryRun bool
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		HeaderPlacement: HeaderOnDetectedRow,
	}
}

// headerRowOffset returns how many rows below the detected header row new
// labels go.
func (o Options) headerRowOffset() int {
	if o.HeaderPlacement == HeaderBelowDetectedRow {
		return 1
	}
	return 0
}

// ShouldProcess returns whether the named sheet is selected.
func (o Options) ShouldProcess(sheetName string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, name := range o.Sheets {
		if name == sheetName {
			return true
		}
	}
	return false
}
