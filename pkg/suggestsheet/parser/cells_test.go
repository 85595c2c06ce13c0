package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Notes")
	f.SetCellValue(sheetName, "A2", "Keyword")
	f.SetCellValue(sheetName, "B2", "Longest Option")
	f.SetCellValue(sheetName, "A3", "shoes")
	f.SetCellValue(sheetName, "A4", 42)

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[1][1] != "Longest Option" {
		t.Errorf("Expected 'Longest Option', got %q", rows[1][1])
	}
	// Numbers come back as formatted text
	if rows[3][0] != "42" {
		t.Errorf("Expected '42', got %q", rows[3][0])
	}

	os.Remove(tmpFile)
}

func TestExtractKeywordRows(t *testing.T) {
	rows := [][]string{
		{"Title"},
		{"Keyword", "Longest"},
		{"shoes"},
		{"none"},
		{""},
		{},
		{"  NONE "},
		{" red dress ", "old"},
	}

	got, skipped := ExtractKeywordRows(rows, 1, 0)

	if skipped != 4 {
		t.Errorf("Expected 4 skipped rows, got %d", skipped)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 keyword rows, got %d", len(got))
	}
	if got[0].R != 3 || got[0].Keyword != "shoes" {
		t.Errorf("Unexpected first row: %+v", got[0])
	}
	if got[1].R != 8 || got[1].Keyword != "red dress" {
		t.Errorf("Unexpected second row: %+v", got[1])
	}
}

func TestKeywordCell(t *testing.T) {
	tests := []struct {
		row      []string
		col      int
		expected string
		ok       bool
	}{
		{[]string{"shoes"}, 0, "shoes", true},
		{[]string{"a", " b "}, 1, "b", true},
		{[]string{"None"}, 0, "", false},
		{[]string{"NONE"}, 0, "", false},
		{[]string{""}, 0, "", false},
		{[]string{"   "}, 0, "", false},
		{[]string{"x"}, 3, "", false},
		{nil, 0, "", false},
		{[]string{"nonexistent"}, 0, "nonexistent", true},
	}

	for _, tt := range tests {
		result, ok := KeywordCell(tt.row, tt.col)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("KeywordCell(%q, %d) = (%q, %v), expected (%q, %v)",
				tt.row, tt.col, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestDataWidth(t *testing.T) {
	tests := []struct {
		rows     [][]string
		expected int
	}{
		{nil, 0},
		{[][]string{{"Keyword"}}, 1},
		{[][]string{{"Keyword", "Notes"}, {"shoes"}}, 2},
		{[][]string{{"Keyword"}, {"shoes", "", "extra"}}, 3},
		{[][]string{{"Keyword", "", ""}}, 1},
	}

	for _, tt := range tests {
		result := DataWidth(tt.rows)
		if result != tt.expected {
			t.Errorf("DataWidth(%q) = %d, expected %d", tt.rows, result, tt.expected)
		}
	}
}
