package gui

import (
	"os"
	"testing"

	"github.com/etnz/stockview"
	"github.com/etnz/stockview/chart"
	"github.com/google/go-cmp/cmp"
)

func TestSessionLoad(t *testing.T) {
	s := &session{cfg: chart.DefaultConfig(), tempDir: t.TempDir()}
	d := stockview.StockData{
		Symbol: "VUG",
		Points: chart.Series{{X: 1704153600, Y: 313.5}, {X: 1704240000, Y: 309.75}},
		Labels: stockview.DefaultLabels("VUG"),
	}
	s.estimate = chart.Series{{X: 1, Y: 1}}
	if err := s.load(d); err != nil {
		t.Fatalf("load() unexpected error = %v", err)
	}
	if s.estimate != nil {
		t.Errorf("load() kept the previous estimate")
	}
	first := s.dataFile
	f, err := os.Open(first)
	if err != nil {
		t.Fatalf("hand-off file: %v", err)
	}
	got, err := stockview.DecodeCSV(f)
	f.Close()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.Points, got); diff != "" {
		t.Errorf("hand-off file mismatch (-want +got):\n%s", diff)
	}

	if err := s.load(d); err != nil {
		t.Fatalf("load() unexpected error = %v", err)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("previous hand-off file %q still exists", first)
	}
}

func TestSessionImage(t *testing.T) {
	s := &session{cfg: chart.DefaultConfig()}
	s.data = stockview.StockData{Symbol: "VUG", Points: chart.Series{{X: 0, Y: 0}, {X: 10, Y: 10}}}
	img := s.image(320, 240)
	if got := img.Bounds().Size(); got.X != 320 || got.Y != 240 {
		t.Errorf("image() size = %v, want 320x240", got)
	}
	if got := s.image(0, 10).Bounds().Size(); got.X != 1 || got.Y != 1 {
		t.Errorf("image(0, 10) size = %v, want 1x1", got)
	}
}

func TestSplitArgs(t *testing.T) {
	want := []string{"VUG", "30"}
	if diff := cmp.Diff(want, splitArgs("  VUG   30 ")); diff != "" {
		t.Errorf("splitArgs() mismatch (-want +got):\n%s", diff)
	}
	if got := splitArgs(""); len(got) != 0 {
		t.Errorf("splitArgs(\"\") = %v, want none", got)
	}
}
