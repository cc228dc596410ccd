package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggchart/container"
	"github.com/gogpu/ggchart/style"
	"github.com/gogpu/ggchart/widget"
)

// faceCache keeps one opentype face per font size.
type faceCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

func newFaceCache() (*faceCache, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	return &faceCache{font: f, faces: make(map[float64]font.Face)}, nil
}

func (fc *faceCache) face(size float64) (font.Face, error) {
	if size <= 0 {
		size = widget.DefaultFontSize
	}
	if f, ok := fc.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[size] = f
	return f, nil
}

func (fc *faceCache) Close() {
	for _, f := range fc.faces {
		_ = f.Close()
	}
}

// renderImage draws every active label and title of c onto a new image.
// Geometry is not drawn; the image shows where text widgets ended up.
func renderImage(c *container.Chart) (*image.RGBA, error) {
	b := c.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, int(b.X+b.W), int(b.Y+b.H)))
	bg := c.Theme().Background
	if bg.IsClear() {
		bg = style.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.Color()), image.Point{}, draw.Src)

	fc, err := newFaceCache()
	if err != nil {
		return nil, err
	}
	defer fc.Close()

	var drawErr error
	c.Root().Walk(func(n *widget.Node) bool {
		if !n.Active() || drawErr != nil {
			return false
		}
		switch e := n.Element().(type) {
		case *widget.Label:
			drawErr = drawLabel(img, fc, e)
		case *widget.Text:
			drawErr = drawText(img, fc, e.Text(), e.FontSize(), e.Color(), e.LocalPosition())
		}
		return true
	})
	if drawErr != nil {
		return nil, drawErr
	}
	return img, nil
}

func drawLabel(dst draw.Image, fc *faceCache, l *widget.Label) error {
	w, h := l.Size()
	pos := l.Position()
	if bg := l.BackgroundColor(); !bg.IsClear() && w > 0 && h > 0 {
		r := image.Rect(int(pos.X-w/2), int(pos.Y-h/2), int(pos.X+w/2), int(pos.Y+h/2))
		draw.Draw(dst, r, image.NewUniform(bg.Color()), image.Point{}, draw.Over)
	}
	return drawText(dst, fc, l.Text(), l.FontSize(), l.TextColor(), pos)
}

// drawText draws s centered on center.
func drawText(dst draw.Image, fc *faceCache, s string, size float64, col style.RGBA, center style.Vec2) error {
	if s == "" {
		return nil
	}
	face, err := fc.face(size)
	if err != nil {
		return err
	}
	if col.IsClear() {
		col = style.Black
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col.Color()),
		Face: face,
	}
	adv := d.MeasureString(s)
	m := face.Metrics()
	x := fixed.Int26_6(center.X*64) - adv/2
	y := fixed.Int26_6(center.Y*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(s)
	return nil
}

// writePNG renders c and writes it to path.
func writePNG(c *container.Chart, path string) error {
	img, err := renderImage(c)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
