// Package surface paints chart commands with the go-chart renderers.
//
// The chart package only describes a drawing. Draw replays that description
// on any chart.Renderer; PNG, SVG and Image are shortcuts for the raster and
// vector renderers shipped with go-chart.
package surface

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/etnz/stockview/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// Draw replays cmds on r, in order.
func Draw(r gochart.Renderer, cmds []chart.Command) error {
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}
	r.SetFont(font)
	dpi := r.GetDPI()
	if dpi <= 0 {
		dpi = gochart.DefaultDPI
	}

	for _, c := range cmds {
		r.SetClassName(string(c.Role))
		switch c.Kind {
		case chart.FillRect:
			r.SetFillColor(c.Style.Color)
			rectPath(r, c.Rect)
			r.Fill()

		case chart.StrokeRect:
			stroke(r, c.Style)
			rectPath(r, c.Rect)
			r.Stroke()

		case chart.Line, chart.Polyline:
			if len(c.Points) < 2 {
				continue
			}
			stroke(r, c.Style)
			r.MoveTo(px(c.Points[0].X), px(c.Points[0].Y))
			for _, p := range c.Points[1:] {
				r.LineTo(px(p.X), px(p.Y))
			}
			r.Stroke()

		case chart.Text:
			if len(c.Points) < 1 || c.Text == "" {
				continue
			}
			r.SetFontColor(c.Style.Color)
			// go-chart sizes fonts in points
			r.SetFontSize(c.Style.FontSize * 72 / dpi)
			if c.Rotation != 0 {
				r.SetTextRotation(c.Rotation * math.Pi / 180)
			}
			r.Text(c.Text, px(c.Points[0].X), px(c.Points[0].Y))
			r.ClearTextRotation()

		default:
			return fmt.Errorf("unknown command kind %v", c.Kind)
		}
	}
	return nil
}

func stroke(r gochart.Renderer, s chart.Style) {
	r.SetStrokeColor(s.Color)
	r.SetStrokeWidth(s.Width)
	r.SetStrokeDashArray(s.Dash)
}

func rectPath(r gochart.Renderer, rc chart.Rect) {
	x0, y0 := px(rc.X), px(rc.Y)
	x1, y1 := px(rc.X+rc.W), px(rc.Y+rc.H)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
}

func px(v float64) int { return int(math.Round(v)) }

// Render draws cmds on a width x height renderer created by provider and
// saves the result to w.
func Render(provider gochart.RendererProvider, w io.Writer, width, height int, cmds []chart.Command) error {
	r, err := provider(width, height)
	if err != nil {
		return err
	}
	if err := Draw(r, cmds); err != nil {
		return err
	}
	return r.Save(w)
}

// PNG writes cmds as a PNG image.
func PNG(w io.Writer, width, height int, cmds []chart.Command) error {
	return Render(gochart.PNG, w, width, height, cmds)
}

// SVG writes cmds as an SVG document.
func SVG(w io.Writer, width, height int, cmds []chart.Command) error {
	return Render(gochart.SVG, w, width, height, cmds)
}

// Image rasterizes cmds in memory.
func Image(width, height int, cmds []chart.Command) (image.Image, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, width, height, cmds); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
