package chart

import "testing"

func TestLegendBox(t *testing.T) {
	box := LegendBox(60, Point{750, 50})
	if box.W != 100 {
		t.Errorf("width = %v, want 100", box.W)
	}
	if box.H != 30 {
		t.Errorf("height = %v, want 30", box.H)
	}
	if box.Max().X != 740 || box.Y != 60 {
		t.Errorf("box = %+v, want right edge 740 and top 60", box)
	}

	for _, w := range []float64{0, 7, 250} {
		if got := LegendBox(w, Point{}).H; got != 30 {
			t.Errorf("LegendBox(%v).H = %v, want 30", w, got)
		}
	}
}
