package chart

import (
	"strconv"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind is the primitive a Command draws.
type Kind int

const (
	FillRect   Kind = iota // fill Rect with Style.Color
	StrokeRect             // outline Rect
	Line                   // segment from Points[0] to Points[1]
	Polyline               // connected segments through Points
	Text                   // Text with its baseline starting at Points[0]
)

var kindNames = [...]string{"fill-rect", "stroke-rect", "line", "polyline", "text"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Role tells which part of the chart a Command belongs to. Surfaces ignore
// it; it lets callers pick out elements (tests, SVG class names).
type Role string

const (
	RoleBackground Role = "background"
	RoleTitle      Role = "title"
	RoleAxis       Role = "axis"
	RoleGrid       Role = "grid"
	RoleTick       Role = "tick"
	RoleTickLabel  Role = "tick-label"
	RoleAxisTitle  Role = "axis-title"
	RoleCurve      Role = "curve"
	RoleEstimate   Role = "estimate"
	RoleLegend     Role = "legend"
)

// Style carries the paint attributes of a Command.
type Style struct {
	Color    drawing.Color
	Width    float64   // stroke width in pixels
	Dash     []float64 // dash pattern, nil for solid strokes
	FontSize float64   // text size in pixels
	Bold     bool
}

// Command is one drawing primitive.
//
// Rotation applies to Text only. It is expressed in degrees, clockwise on
// screen, around the baseline start: -90 makes the text read bottom to top.
type Command struct {
	Kind     Kind
	Role     Role
	Style    Style
	Rect     Rect
	Points   []Point
	Text     string
	Rotation float64
}

// Count returns the number of commands having kind k and role r.
// An empty role matches any role.
func Count(cmds []Command, k Kind, r Role) int {
	n := 0
	for _, c := range cmds {
		if c.Kind == k && (r == "" || c.Role == r) {
			n++
		}
	}
	return n
}
