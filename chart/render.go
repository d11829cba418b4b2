package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

const (
	tickLength     = 5  // half length of a tick mark
	labelGap       = 10 // distance between an axis and its tick labels
	xLabelBaseline = 20 // baseline of numeric x labels below the axis
	axisTitleGap   = 25 // distance between x tick labels and the x axis title
	yTitleBaseline = 20 // x position of the rotated y axis title
	titleTop       = 10
)

var gridDash = []float64{1, 3}

// Labels are the caller supplied texts of a chart.
type Labels struct {
	Title          string
	XAxis          string
	YAxis          string
	Legend         string
	EstimateLegend string // legend of the estimate curve, none when empty
}

// Render describes the chart of primary, and of the optional estimate
// overlay, on a canvas of the given size.
//
// The layout comes from primary alone; estimate is mapped through it and
// may therefore run out of the plot area. Render never fails: an empty
// primary series or a canvas smaller than the margins yields the background
// and the title only, a primary series with fewer than two samples yields
// no curve and no legend.
func Render(cfg Config, width, height float64, primary, estimate Series, labels Labels) []Command {
	p := painter{cfg: cfg, measurer: cfg.measurer()}

	p.fill(RoleBackground, Rect{W: width, H: height}, cfg.Palette.Background)
	tw, th := p.measurer.MeasureText(labels.Title, cfg.TitleSize)
	p.cmds = append(p.cmds, Command{
		Kind:   Text,
		Role:   RoleTitle,
		Style:  Style{Color: cfg.Palette.Text, FontSize: cfg.TitleSize, Bold: true},
		Points: []Point{{X: (width - tw) / 2, Y: titleTop + th}},
		Text:   labels.Title,
	})

	l, ok := ComputeLayout(width, height, cfg.Margins, primary)
	if !ok {
		return p.cmds
	}
	area := l.PlotArea()
	bottom := area.Max().Y

	axis := Style{Color: cfg.Palette.Axis, Width: 2}
	p.line(RoleAxis, Point{area.X, bottom}, Point{area.X + area.W, bottom}, axis)
	p.line(RoleAxis, Point{area.X, area.Y}, Point{area.X, bottom}, axis)

	extent := p.xAxis(l, l.XTicks(cfg.XTicks, cfg.XMode))
	p.yAxis(l, l.YTicks(cfg.YTicks, cfg.YMode))

	yw, _ := p.measurer.MeasureText(labels.YAxis, cfg.LabelSize)
	p.text(RoleAxisTitle, labels.YAxis, Point{yTitleBaseline, area.Y + area.H/2 + yw/2}, -90)
	xw, _ := p.measurer.MeasureText(labels.XAxis, cfg.LabelSize)
	p.text(RoleAxisTitle, labels.XAxis, Point{area.X + area.W/2 - xw/2, bottom + extent + axisTitleGap}, 0)

	if len(primary) < 2 {
		return p.cmds
	}
	p.curve(RoleCurve, l, primary, cfg.Palette.Primary)
	hasEstimate := len(estimate) >= 2
	if hasEstimate {
		p.curve(RoleEstimate, l, estimate, cfg.Palette.Estimate)
	}

	anchor := Point{area.X + area.W, area.Y}
	box := p.legend(labels.Legend, anchor, cfg.Palette.Primary)
	if hasEstimate && labels.EstimateLegend != "" {
		p.legend(labels.EstimateLegend, Point{anchor.X, box.Max().Y - legendInset/2}, cfg.Palette.Estimate)
	}
	return p.cmds
}

// painter accumulates the commands of a single Render call.
type painter struct {
	cfg      Config
	measurer TextMeasurer
	cmds     []Command
}

func (p *painter) fill(role Role, r Rect, c drawing.Color) {
	p.cmds = append(p.cmds, Command{Kind: FillRect, Role: role, Style: Style{Color: c}, Rect: r})
}

func (p *painter) line(role Role, a, b Point, s Style) {
	p.cmds = append(p.cmds, Command{Kind: Line, Role: role, Style: s, Points: []Point{a, b}})
}

func (p *painter) text(role Role, s string, at Point, rotation float64) {
	p.cmds = append(p.cmds, Command{
		Kind:     Text,
		Role:     role,
		Style:    Style{Color: p.cfg.Palette.Text, FontSize: p.cfg.LabelSize},
		Points:   []Point{at},
		Text:     s,
		Rotation: rotation,
	})
}

// xAxis draws the vertical gridlines, tick marks and labels of the x axis.
// It returns how far below the axis the labels reach.
func (p *painter) xAxis(l Layout, ticks []Tick) (extent float64) {
	area := l.PlotArea()
	bottom := area.Max().Y
	grid := Style{Color: p.cfg.Palette.Grid, Width: 1, Dash: gridDash}
	mark := Style{Color: p.cfg.Palette.Axis, Width: 1}
	extent = xLabelBaseline
	for _, t := range ticks {
		p.line(RoleGrid, Point{t.Pos, area.Y}, Point{t.Pos, bottom}, grid)
		p.line(RoleTick, Point{t.Pos, bottom - tickLength}, Point{t.Pos, bottom + tickLength}, mark)

		w, h := p.measurer.MeasureText(t.Label, p.cfg.LabelSize)
		if p.cfg.XMode == Date {
			// Rotated so that eleven dates fit side by side.
			p.text(RoleTickLabel, t.Label, Point{t.Pos + h/3, bottom + labelGap + w}, -90)
			extent = max(extent, labelGap+w)
			continue
		}
		p.text(RoleTickLabel, t.Label, Point{t.Pos - w/2, bottom + xLabelBaseline}, 0)
	}
	return extent
}

// yAxis draws the horizontal gridlines, tick marks and labels of the y axis.
func (p *painter) yAxis(l Layout, ticks []Tick) {
	area := l.PlotArea()
	grid := Style{Color: p.cfg.Palette.Grid, Width: 1, Dash: gridDash}
	mark := Style{Color: p.cfg.Palette.Axis, Width: 1}
	for _, t := range ticks {
		p.line(RoleGrid, Point{area.X, t.Pos}, Point{area.X + area.W, t.Pos}, grid)
		p.line(RoleTick, Point{area.X - tickLength, t.Pos}, Point{area.X + tickLength, t.Pos}, mark)

		w, h := p.measurer.MeasureText(t.Label, p.cfg.LabelSize)
		p.text(RoleTickLabel, t.Label, Point{area.X - w - labelGap, t.Pos + h/4}, 0)
	}
}

func (p *painter) curve(role Role, l Layout, s Series, c drawing.Color) {
	p.cmds = append(p.cmds, Command{
		Kind:   Polyline,
		Role:   role,
		Style:  Style{Color: c, Width: 2},
		Points: l.MapSeries(s),
	})
}

// legend draws a legend entry hung from anchor and returns its box.
func (p *painter) legend(s string, anchor Point, c drawing.Color) Rect {
	w, h := p.measurer.MeasureText(s, p.cfg.LabelSize)
	box := LegendBox(w, anchor)
	center := box.Center()
	p.fill(RoleLegend, box, p.cfg.Palette.LegendFill)
	p.cmds = append(p.cmds, Command{
		Kind:  StrokeRect,
		Role:  RoleLegend,
		Style: Style{Color: p.cfg.Palette.LegendBorder, Width: 1},
		Rect:  box,
	})
	p.line(RoleLegend, Point{box.X + 5, center.Y}, Point{box.X + 25, center.Y}, Style{Color: c, Width: 2})
	p.text(RoleLegend, s, Point{box.X + 30, center.Y + h/3}, 0)
	return box
}
