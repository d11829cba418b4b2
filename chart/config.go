package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette holds the colors of a chart.
type Palette struct {
	Background   drawing.Color
	Text         drawing.Color
	Axis         drawing.Color
	Grid         drawing.Color
	Primary      drawing.Color
	Estimate     drawing.Color
	LegendFill   drawing.Color
	LegendBorder drawing.Color
}

var (
	white = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	black = drawing.Color{A: 255}
)

// DefaultPalette is black on white, a blue price curve and a red estimate.
var DefaultPalette = Palette{
	Background:   white,
	Text:         black,
	Axis:         black,
	Grid:         drawing.Color{R: 192, G: 192, B: 192, A: 255},
	Primary:      drawing.Color{R: 0, G: 0, B: 255, A: 255},
	Estimate:     drawing.Color{R: 255, G: 0, B: 0, A: 255},
	LegendFill:   white,
	LegendBorder: black,
}

// Config holds everything Render needs besides the data.
type Config struct {
	Margins Margins

	XTicks, YTicks int // number of intervals per axis
	XMode, YMode   LabelMode

	Palette Palette

	TitleSize float64 // chart title, in pixels
	LabelSize float64 // tick labels, axis titles and legend, in pixels

	// Measurer sizes texts for centering and for the legend box.
	// BasicMeasurer is used when nil.
	Measurer TextMeasurer
}

// DefaultConfig returns the configuration of a daily price chart: dates on
// the x axis, prices on the y axis, ten intervals each.
func DefaultConfig() Config {
	return Config{
		Margins:   DefaultMargins,
		XTicks:    DefaultTickCount,
		YTicks:    DefaultTickCount,
		XMode:     Date,
		YMode:     Numeric,
		Palette:   DefaultPalette,
		TitleSize: 16,
		LabelSize: 12,
		Measurer:  BasicMeasurer{},
	}
}

func (c Config) measurer() TextMeasurer {
	if c.Measurer == nil {
		return BasicMeasurer{}
	}
	return c.Measurer
}
