package suggestsheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open xlsx file that is saved back to the path it came from.
type Workbook struct {
	file   *excelize.File
	path   string
	dryRun bool
}

// OpenWorkbook opens the workbook at path.
func OpenWorkbook(path string) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{file: f, path: path}, nil
}

// NewWorkbook wraps an already open file that saves to path.
func NewWorkbook(f *excelize.File, path string) *Workbook {
	return &Workbook{file: f, path: path}
}

// File returns the underlying excelize file.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// Path returns the path the workbook is saved to.
func (w *Workbook) Path() string {
	return w.path
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// SetCell writes a string value at 1-based column col and row row.
func (w *Workbook) SetCell(sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.file.SetCellStr(sheet, cell, value)
}

// Save writes the workbook to its original path. In dry-run mode it does
// nothing.
func (w *Workbook) Save() error {
	if w.dryRun {
		return nil
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("save %s: %w", w.path, err)
	}
	return nil
}

// Close releases resources held by the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}
