package surface

import (
	"sync"

	"github.com/etnz/stockview/chart"
	"github.com/golang/freetype/truetype"
	gochart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
)

// Measurer measures texts with the font Draw paints them with, so that
// centered titles and legend boxes fit the rendered text.
//
// The zero value is ready to use. When the font cannot be loaded it falls
// back to chart.BasicMeasurer metrics.
type Measurer struct {
	once sync.Once
	font *truetype.Font
}

// NewMeasurer returns a ready to use Measurer.
func NewMeasurer() *Measurer { return &Measurer{} }

func (m *Measurer) MeasureText(text string, size float64) (width, height float64) {
	m.once.Do(func() {
		m.font, _ = gochart.GetDefaultFont()
	})
	if m.font == nil || size <= 0 {
		return chart.BasicMeasurer{}.MeasureText(text, size)
	}
	face := truetype.NewFace(m.font, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()
	width = float64(font.MeasureString(face, text).Ceil())
	metrics := face.Metrics()
	height = float64((metrics.Ascent + metrics.Descent).Ceil())
	return width, height
}
