// Package chart computes the geometry of a time-series line chart and
// describes it as an ordered list of drawing commands.
//
// The package is a pure engine: it never draws pixels itself and holds no
// state between calls. A caller builds a [Config], hands one primary [Series]
// (and optionally an estimate series that shares the primary's scale) to
// [Render], and replays the returned [Command] values onto whatever surface
// it owns (see package surface for PNG and SVG output).
//
// Input series are expected in non-decreasing X order. The X range is taken
// from the first and last samples, not from a scan, so unordered input
// produces a misleading scale rather than an error.
package chart
