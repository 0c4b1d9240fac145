// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	headers := []string{"Name", "Age", "City"}
	table := NewTable(headers)

	if table == nil {
		t.Fatal("NewTable returned nil")
	}

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}

	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	// Add matching row
	table.AddRow([]string{"Alice", "30"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"Bob"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"Charlie", "25", "Extra"})
	if len(table.rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})
	table.AddRow([]string{"Alice", "30", "New York"})
	table.AddRow([]string{"Bob", "25", "LA"})

	output := table.Render()

	// Check that output contains headers
	if !strings.Contains(output, "Name") {
		t.Error("Output should contain 'Name' header")
	}
	if !strings.Contains(output, "Age") {
		t.Error("Output should contain 'Age' header")
	}
	if !strings.Contains(output, "City") {
		t.Error("Output should contain 'City' header")
	}

	// Check that output contains data
	if !strings.Contains(output, "Alice") {
		t.Error("Output should contain 'Alice'")
	}
	if !strings.Contains(output, "Bob") {
		t.Error("Output should contain 'Bob'")
	}
	if !strings.Contains(output, "New York") {
		t.Error("Output should contain 'New York'")
	}

	// Check for separator line (should contain dashes)
	lines := strings.Split(output, "\n")
	if len(lines) < 4 { // header + separator + 2 data rows + trailing newline
		t.Errorf("Expected at least 4 lines, got %d", len(lines))
	}

	// Second line should be separator with dashes
	if !strings.Contains(lines[1], "---") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	// Empty table (no headers)
	table := &Table{
		headers: []string{},
		rows:    make([][]string, 0),
		padding: 2,
	}

	output := table.Render()
	if output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	// Table with headers but no rows
	table := NewTable([]string{"Column1", "Column2"})

	output := table.Render()

	// Should still render headers and separator
	if !strings.Contains(output, "Column1") {
		t.Error("Output should contain headers even without rows")
	}

	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		t.Error("Expected at least header and separator lines")
	}
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable([]string{"Short", "Very Long Header", "Mid"})
	table.AddRow([]string{"A", "B", "C"})
	table.AddRow([]string{"123456789", "X", "Test"})

	output := table.Render()
	lines := strings.Split(output, "\n")

	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}

	// The "Very Long Header" should determine where the last column starts
	want := strings.Index(lines[0], "Mid")
	for i, line := range lines[1:4] {
		if got := strings.LastIndex(line, " ") + 1; got != want {
			t.Errorf("line %d: last column starts at %d, want %d: %q", i+1, got, want, line)
		}
	}

	// The last column is not padded
	if strings.HasSuffix(lines[0], " ") {
		t.Errorf("Header line should not end with padding: %q", lines[0])
	}
}

func TestTableAlignRight(t *testing.T) {
	table := NewTable([]string{"#", "Name"})
	table.AlignRight(0)
	table.AddRow([]string{"1", "viridis"})
	table.AddRow([]string{"10", "magma"})

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != " 1  viridis" {
		t.Errorf("Expected right-aligned number, got %q", lines[2])
	}
	if lines[3] != "10  magma" {
		t.Errorf("Unexpected row: %q", lines[3])
	}
}

func TestTableWithSpecialCharacters(t *testing.T) {
	table := NewTable([]string{"Name", "Symbol"})
	table.AddRow([]string{"Test", "→ →"})
	table.AddRow([]string{"Special", "★ ☆"})

	output := table.Render()

	if !strings.Contains(output, "→") {
		t.Error("Output should contain special character →")
	}
	if !strings.Contains(output, "★") {
		t.Error("Output should contain special character ★")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"}, // Width less than string length
		{"", 5, "     "},
		{"x", 1, "x"},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"42", 4, "  42"},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		result := padLeft(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
