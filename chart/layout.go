package chart

// Margins reserve room around the plot area for titles and tick labels.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins leaves a deep bottom margin for the rotated date labels.
var DefaultMargins = Margins{Left: 70, Right: 50, Top: 50, Bottom: 130}

// Point is a position in pixels, Y growing downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Center returns the center of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Layout is the pixel geometry of a chart and its data-to-pixel transform.
//
// A Layout is derived from a single series and a canvas size, see
// [ComputeLayout]; it is never updated in place.
type Layout struct {
	Width, Height float64 // canvas size
	Margins
	X, Y           Range
	XScale, YScale float64 // pixels per data unit
}

// ComputeLayout derives the layout of a chart of the given canvas size from s.
//
// It returns false when s is empty or when the margins leave no room for a
// plot area, in which case the chart body must not be drawn.
func ComputeLayout(width, height float64, m Margins, s Series) (Layout, bool) {
	l := Layout{Width: width, Height: height, Margins: m}
	if len(s) == 0 || l.PlotWidth() <= 0 || l.PlotHeight() <= 0 {
		return l, false
	}
	l.X, l.Y = s.XRange(), s.YRange()
	l.XScale = l.PlotWidth() / l.X.Span()
	l.YScale = l.PlotHeight() / l.Y.Span()
	return l, true
}

// PlotWidth is the canvas width minus the left and right margins.
func (l Layout) PlotWidth() float64 { return l.Width - l.Left - l.Right }

// PlotHeight is the canvas height minus the top and bottom margins.
func (l Layout) PlotHeight() float64 { return l.Height - l.Top - l.Bottom }

// PlotArea returns the rectangle enclosed by the axes.
func (l Layout) PlotArea() Rect {
	return Rect{X: l.Left, Y: l.Top, W: l.PlotWidth(), H: l.PlotHeight()}
}

// Map converts a sample to its pixel position. Data Y grows upward, pixel Y downward.
func (l Layout) Map(s Sample) Point {
	return Point{
		X: l.Left + (s.X-l.X.Min)*l.XScale,
		Y: l.Top + l.PlotHeight() - (s.Y-l.Y.Min)*l.YScale,
	}
}

// MapSeries maps every sample of s.
func (l Layout) MapSeries(s Series) []Point {
	points := make([]Point, len(s))
	for i, p := range s {
		points[i] = l.Map(p)
	}
	return points
}
