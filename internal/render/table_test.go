package render

import (
	"strings"
	"testing"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "tiny width collapses to ellipsis",
			input:    "Hello",
			width:    2,
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padToWidth(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestPadToWidthUnicode(t *testing.T) {
	// CJK runes occupy two display columns each.
	got := padToWidth("音楽", 8)
	if got != "音楽    " {
		t.Errorf("padToWidth(音楽, 8) = %q, want 4 columns of text plus 4 spaces", got)
	}
}

func TestTableAlignment(t *testing.T) {
	table := NewTable("ID", "Name", "Albums")
	table.AddRow("1", "AC/DC", "16")
	table.AddRow("129348", "Bach", "12")

	if table.Len() != 2 {
		t.Fatalf("table has %d rows, want 2", table.Len())
	}

	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want header + separator + 2 rows", len(lines))
	}

	// Every column starts at the same offset on every line.
	nameCol := strings.Index(lines[0], "Name")
	if nameCol < 0 {
		t.Fatal("header missing Name column")
	}
	for i, line := range lines {
		if i == 1 {
			continue // separator
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			t.Errorf("line %d has %d fields, want 3: %q", i, len(fields), line)
		}
	}
	if !strings.HasPrefix(lines[3], "129348  Bach") {
		t.Errorf("row = %q, want id and name separated by two spaces", lines[3])
	}
	if strings.Index(lines[2], "AC/DC") != nameCol {
		t.Errorf("name column misaligned: %q", lines[2])
	}
}

func TestTableMissingCells(t *testing.T) {
	table := NewTable("ID", "Name")
	table.AddRow("1")

	out := table.String()
	if !strings.Contains(out, "1") {
		t.Errorf("rendered table missing row: %q", out)
	}
}
