// Package text rasterizes strings into textures with a TrueType or
// OpenType font.
package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/orrery/internal/engine/texture"
)

// Font is a parsed font file.
type Font struct {
	Name string
	sfnt *opentype.Font
}

// ParseFont parses a font file. Its signature matches assets.Load decoders.
func ParseFont(name string, data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	return &Font{Name: name, sfnt: f}, nil
}

// Label is a rasterized string.
type Label struct {
	Image *texture.Image
	// Aspect is width / height, for sizing the quad that shows it.
	Aspect float32
}

// Rasterize draws s in c at size points on a transparent background,
// padded by pad pixels on every side.
func (f *Font) Rasterize(s string, size float64, c color.Color, pad int) (*Label, error) {
	face, err := opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil() + 2*pad
	h := (m.Ascent + m.Descent).Ceil() + 2*pad
	if w <= 2*pad {
		return nil, fmt.Errorf("label %q has no width", s)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(pad, pad+m.Ascent.Ceil()),
	}
	d.DrawString(s)

	return &Label{
		Image:  texture.FromImage("label:"+s, dst),
		Aspect: float32(w) / float32(h),
	}, nil
}
