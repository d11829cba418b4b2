package stockview

import (
	"bytes"
	"testing"

	"github.com/etnz/stockview/chart"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestEncodeXLSX(t *testing.T) {
	var buf bytes.Buffer
	primary := chart.Series{{X: 1704153600, Y: 313.5}}
	estimate := chart.Series{{X: 1704240000, Y: 310}}
	if err := EncodeXLSX(&buf, primary, estimate); err != nil {
		t.Fatalf("EncodeXLSX() unexpected error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() unexpected error = %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{"Prices", "Estimate"}, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
	rows, err := f.GetRows("Prices")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"timestamp", "date", "price"},
		{"1704153600", "2024-01-02", "313.5"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Prices rows mismatch (-want +got):\n%s", diff)
	}
}
