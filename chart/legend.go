package chart

const (
	legendPadding = 40 // room for the sample line and the text margins
	legendHeight  = 30
	legendInset   = 10 // distance from the plot's top-right corner
)

// LegendBox returns the legend rectangle for a text of the given measured
// width, hung from anchor, the top-right corner of the plot area.
//
// The box never avoids the curves: it may hide part of them.
func LegendBox(textWidth float64, anchor Point) Rect {
	w := textWidth + legendPadding
	return Rect{
		X: anchor.X - legendInset - w,
		Y: anchor.Y + legendInset,
		W: w,
		H: legendHeight,
	}
}
