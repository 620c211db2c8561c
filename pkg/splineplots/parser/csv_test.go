package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestReadDelimitedPaddedHeaders(t *testing.T) {
	path := writeFile(t, t.TempDir(), "interp.csv",
		"x  ,y  ,dy ,d2y\n0.0,1.0,0.5,-1.0\n0.5,0.9,0.4,-0.9\n1.0,0.8,0.3,-0.8\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Expected 3 rows, got %d", table.Len())
	}
	if table.Columns[0] != "x  " {
		t.Errorf("Expected header kept verbatim as %q, got %q", "x  ", table.Columns[0])
	}

	for _, name := range []string{"x", "x  ", "y", "dy", "dy ", "d2y"} {
		if table.Index(name) < 0 {
			t.Errorf("Column %q not found", name)
		}
	}

	ys, ok := table.Column("d2y")
	if !ok {
		t.Fatal("Column d2y not found")
	}
	want := []float64{-1.0, -0.9, -0.8}
	for i := range want {
		if ys[i] != want[i] {
			t.Errorf("d2y[%d] = %v, expected %v", i, ys[i], want[i])
		}
	}
}

func TestReadDelimitedTSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "exact.tsv", "x0\ty0\n0\t0\n3.14\t0.0016\n")

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	xs, _ := table.Column("x0")
	if len(xs) != 2 || xs[1] != 3.14 {
		t.Errorf("Unexpected x0 column: %v", xs)
	}
}

func TestReadDelimitedErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		missing   bool
		wantRow   int
		wantNoRow bool
	}{
		{name: "absent.csv", missing: true},
		{name: "empty.csv", content: ""},
		{name: "header_only.csv", content: "x0,y0\n", wantNoRow: true},
		{name: "text_cell.csv", content: "x0,y0\n1,2\n3,abc\n", wantRow: 2},
		{name: "blank_cell.csv", content: "x0,y0\n1,\n", wantRow: 1},
		{name: "ragged.csv", content: "x0,y0\n1,2\n3,4,5\n", wantRow: 2},
		{name: "nan.csv", content: "x0,y0\n1,NaN\n", wantRow: 1},
		{name: "inf.csv", content: "x0,y0\n1,2\n-Inf,3\n", wantRow: 2},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if !tt.missing {
			writeFile(t, dir, tt.name, tt.content)
		}

		_, err := ReadTable(path)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}

		if tt.missing {
			var missing *MissingInputError
			if !errors.As(err, &missing) {
				t.Errorf("%s: expected MissingInputError, got %T: %v", tt.name, err, err)
			}
			continue
		}

		var malformed *MalformedTableError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedTableError, got %T: %v", tt.name, err, err)
			continue
		}
		if tt.wantNoRow && !errors.Is(err, ErrNoRows) {
			t.Errorf("%s: expected ErrNoRows, got %v", tt.name, err)
		}
		if tt.wantRow > 0 && malformed.Row != tt.wantRow {
			t.Errorf("%s: expected row %d, got %d", tt.name, tt.wantRow, malformed.Row)
		}
	}
}

func TestReadTableDirectory(t *testing.T) {
	_, err := ReadTable(t.TempDir())
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Errorf("Expected MissingInputError for a directory, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"123", 123, false},
		{"123.45", 123.45, false},
		{"  -1e-3 ", -0.001, false},
		{"hello", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
		{"-inf", 0, true},
	}

	for _, tt := range tests {
		result, err := parseValue(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
