package chart

// Sample is a single (x, y) point of a series. X is usually a UNIX timestamp
// in seconds, Y the value at that time.
type Sample struct {
	X, Y float64
}

// Series is an ordered sequence of samples forming one plotted curve.
type Series []Sample

// XRange returns the range spanned by the first and last samples.
//
// The series is trusted to be sorted, no scan is done. The range is expanded
// when degenerate.
func (s Series) XRange() Range {
	if len(s) == 0 {
		return Range{}
	}
	return Range{Min: s[0].X, Max: s[len(s)-1].X}.expand()
}

// YRange returns the true min/max of Y over all samples, expanded when degenerate.
func (s Series) YRange() Range {
	if len(s) == 0 {
		return Range{}
	}
	r := Range{Min: s[0].Y, Max: s[0].Y}
	for _, p := range s {
		if p.Y < r.Min {
			r.Min = p.Y
		}
		if p.Y > r.Max {
			r.Max = p.Y
		}
	}
	return r.expand()
}

// Range is a closed interval of values along one axis.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// expand widens a zero-width range to [Min-1, Max+1].
func (r Range) expand() Range {
	if r.Min == r.Max {
		r.Min--
		r.Max++
	}
	return r
}
