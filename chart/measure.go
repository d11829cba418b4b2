package chart

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the extent of a text drawn at a font size in pixels.
type TextMeasurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

// BasicMeasurer measures text with the fixed 7x13 bitmap face, scaled to
// the requested size. It is deterministic and needs no font file.
type BasicMeasurer struct{}

func (BasicMeasurer) MeasureText(text string, size float64) (width, height float64) {
	face := basicfont.Face7x13
	width = float64(font.MeasureString(face, text).Ceil())
	height = float64(face.Metrics().Height.Ceil())
	if size <= 0 {
		return width, height
	}
	return width * size / height, size
}
