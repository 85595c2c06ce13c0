package suggestsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoHeaderRow indicates no row in the sheet mentions "keyword".
var ErrNoHeaderRow = errors.New("no header row found")

// ErrNoKeywordColumn indicates the header row has no keyword column.
var ErrNoKeywordColumn = errors.New("no keyword column found")

// SheetError represents an error that stopped processing of one sheet.
type SheetError struct {
	SheetName string
	Stage     string // "read", "header", "columns", "write"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}

// IsStructural reports whether err means the sheet layout is unusable, as
// opposed to an I/O or cancellation failure.
func IsStructural(err error) bool {
	return errors.Is(err, ErrNoHeaderRow) || errors.Is(err, ErrNoKeywordColumn)
}
