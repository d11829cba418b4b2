package surface

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/etnz/stockview/chart"
)

func testCommands() []chart.Command {
	cfg := chart.DefaultConfig()
	cfg.Measurer = NewMeasurer()
	s := chart.Series{{X: 1704153600, Y: 100}, {X: 1704240000, Y: 120}, {X: 1704326400, Y: 110}}
	labels := chart.Labels{Title: "VUG Daily Stock Prices", XAxis: "Date", YAxis: "Price (USD)", Legend: "VUG Stock Price"}
	return chart.Render(cfg, 400, 300, s, nil, labels)
}

func TestImage(t *testing.T) {
	img, err := Image(400, 300, testCommands())
	if err != nil {
		t.Fatalf("Image() unexpected error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != 400 || got.Y != 300 {
		t.Errorf("Image() size = %v, want 400x300", got)
	}
	// the corner is only covered by the background
	r, g, b, a := img.At(1, 1).RGBA()
	if got := (color.RGBA64{uint16(r), uint16(g), uint16(b), uint16(a)}); got != (color.RGBA64{0xffff, 0xffff, 0xffff, 0xffff}) {
		t.Errorf("corner pixel = %v, want white", got)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, 400, 300, testCommands()); err != nil {
		t.Fatalf("SVG() unexpected error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "VUG Daily Stock Prices", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG() output does not contain %q", want)
		}
	}
}

func TestPNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, 10, 10, nil); err != nil {
		t.Fatalf("PNG() unexpected error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("PNG() did not write a png file")
	}
}

func TestMeasurer(t *testing.T) {
	m := NewMeasurer()
	short, h := m.MeasureText("abc", 12)
	long, _ := m.MeasureText("abcabcabc", 12)
	if short <= 0 || h <= 0 {
		t.Fatalf("MeasureText(abc) = %v, %v, want positive extents", short, h)
	}
	if long <= short {
		t.Errorf("MeasureText() widths %v <= %v, want longer text to be wider", long, short)
	}
	bigger, _ := m.MeasureText("abc", 24)
	if bigger <= short {
		t.Errorf("MeasureText() at 24px = %v, want wider than %v at 12px", bigger, short)
	}
}
