// Package text measures label strings so pooled label widgets can size their
// boxes to fit.
//
// Two measurers are provided. BasicMeasurer uses the fixed 7x13 bitmap face
// from golang.org/x/image and is deterministic, which makes it the default for
// tests and headless use. ShapingMeasurer shapes text with go-text/typesetting
// and reports real advances for proportional fonts.
package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the width and line height of s rendered at size points.
// A size of zero means the measurer's native size.
type Measurer interface {
	Measure(s string, size float64) (width, height float64)
}

// BasicMeasurer measures with basicfont.Face7x13, scaled linearly to the
// requested size.
type BasicMeasurer struct {
	face font.Face
}

// NewBasicMeasurer creates a measurer over the 7x13 bitmap face.
func NewBasicMeasurer() *BasicMeasurer {
	return &BasicMeasurer{face: basicfont.Face7x13}
}

// NativeSize is the pixel height basicfont.Face7x13 is designed for.
const NativeSize = 13

// Measure implements Measurer.
func (m *BasicMeasurer) Measure(s string, size float64) (width, height float64) {
	scale := 1.0
	if size > 0 {
		scale = size / NativeSize
	}
	adv := font.MeasureString(m.face, s)
	h := m.face.Metrics().Height
	return fixedToFloat(adv) * scale, fixedToFloat(h) * scale
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}
