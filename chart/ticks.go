package chart

import (
	"math"
	"strconv"

	"github.com/etnz/stockview/date"
)

// DefaultTickCount is the number of intervals on each axis.
const DefaultTickCount = 10

// LabelMode selects how tick values are formatted.
type LabelMode int

const (
	// Numeric formats values in fixed point with one fractional digit.
	Numeric LabelMode = iota
	// Date reads values as UNIX seconds and formats the UTC day as yyyy-MM-dd.
	Date
)

func (m LabelMode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Date:
		return "date"
	default:
		return "LabelMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Format returns the label of v in mode m.
func (m LabelMode) Format(v float64) string {
	if m == Date {
		return date.FromUnix(int64(math.Floor(v))).String()
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Tick is a labeled reference mark along an axis.
type Tick struct {
	Value float64 // data value
	Pos   float64 // pixel coordinate along the axis
	Label string
}

// GenerateTicks returns count+1 ticks evenly spaced over r, both ends
// included.
//
// Tick i has value r.Min + i*(r.Max-r.Min)/count and pixel coordinate
// origin + i*(length/count). A negative length runs the axis backward, as
// needed for a Y axis whose origin is at the bottom of the plot.
// A count lower than 1 yields no tick.
func GenerateTicks(r Range, count int, mode LabelMode, origin, length float64) []Tick {
	if count < 1 {
		return nil
	}
	ticks := make([]Tick, count+1)
	n := float64(count)
	for i := range ticks {
		v := r.Min + float64(i)*r.Span()/n
		ticks[i] = Tick{
			Value: v,
			Pos:   origin + float64(i)*(length/n),
			Label: mode.Format(v),
		}
	}
	return ticks
}

// XTicks returns the ticks of the layout's horizontal axis.
func (l Layout) XTicks(count int, mode LabelMode) []Tick {
	return GenerateTicks(l.X, count, mode, l.Left, l.PlotWidth())
}

// YTicks returns the ticks of the layout's vertical axis, from bottom to top.
func (l Layout) YTicks(count int, mode LabelMode) []Tick {
	return GenerateTicks(l.Y, count, mode, l.Top+l.PlotHeight(), -l.PlotHeight())
}
