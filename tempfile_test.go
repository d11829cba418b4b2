package stockview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stockview/chart"
)

func TestTempFiles(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateTempCSV(dir, chart.Series{{X: 1, Y: 2}})
	if err != nil {
		t.Fatalf("CreateTempCSV() unexpected error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "stockview-") || filepath.Ext(path) != ".csv" {
		t.Errorf("CreateTempCSV() = %q, want a stockview-*.csv file", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "timestamp,price\n1,2\n" {
		t.Errorf("content = %q", content)
	}

	nested := filepath.Join(dir, "nested")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"StockView_old.txt", "keep.txt"} {
		if err := os.WriteFile(filepath.Join(nested, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := RemoveTempFiles(dir)
	if err != nil {
		t.Fatalf("RemoveTempFiles() unexpected error = %v", err)
	}
	if n != 2 {
		t.Errorf("RemoveTempFiles() = %d, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(nested, "keep.txt")); err != nil {
		t.Errorf("keep.txt was removed: %v", err)
	}
}
