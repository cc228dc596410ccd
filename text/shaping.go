package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultShapingSize is used when Measure is called with size zero.
const DefaultShapingSize = 14

// ShapingMeasurer measures text by shaping it with HarfBuzz through
// go-text/typesetting, so kerning and ligatures are accounted for.
//
// ShapingMeasurer is safe for concurrent use. The parsed font.Font is
// read-only; a font.Face and a HarfbuzzShaper are created or pooled per call.
type ShapingMeasurer struct {
	font       *font.Font
	shaperPool sync.Pool
}

// NewShapingMeasurer parses TrueType/OpenType data.
func NewShapingMeasurer(ttf []byte) (*ShapingMeasurer, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &ShapingMeasurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// NewGoRegularMeasurer returns a ShapingMeasurer over the Go Regular font.
func NewGoRegularMeasurer() (*ShapingMeasurer, error) {
	return NewShapingMeasurer(goregular.TTF)
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, size float64) (width, height float64) {
	if size <= 0 {
		size = DefaultShapingSize
	}
	if s == "" {
		return 0, size
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	for _, g := range out.Glyphs {
		width += fixedToFloat(g.Advance)
	}
	height = fixedToFloat(out.LineBounds.Ascent - out.LineBounds.Descent)
	if height <= 0 {
		height = size
	}
	return width, height
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
