// Package texture decodes images into CPU-side RGBA pixel buffers ready for
// upload. Pixels are straight (not premultiplied) alpha, matching the
// renderer's SRC_ALPHA blending. Supported formats are PNG, JPEG and BMP.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Image is an RGBA8 pixel buffer stored bottom row first, the order
// glTexImage2D expects for v=0 at the bottom of the image.
type Image struct {
	Name   string
	Width  int
	Height int
	Pix    []byte
}

// Decode decodes an encoded image. The format is sniffed from data.
func Decode(name string, data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty %s image", name, format)
	}
	return FromImage(name, img), nil
}

// FromImage converts any image.Image into a flipped, non-premultiplied
// RGBA buffer.
func FromImage(name string, src image.Image) *Image {
	b := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	out := &Image{Name: name, Width: w, Height: h, Pix: make([]byte, w*h*4)}
	row := w * 4
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+row]
		copy(out.Pix[(h-1-y)*row:], src)
	}
	return out
}

// Solid returns a 1x1 image of a single colour.
func Solid(name string, c color.NRGBA) *Image {
	return &Image{Name: name, Width: 1, Height: 1, Pix: []byte{c.R, c.G, c.B, c.A}}
}

// At returns the pixel at (x, y) with y measured from the top of the
// original image.
func (img *Image) At(x, y int) color.NRGBA {
	o := ((img.Height-1-y)*img.Width + x) * 4
	return color.NRGBA{img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]}
}

// HasAlpha reports whether any pixel is not fully opaque.
func (img *Image) HasAlpha() bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return true
		}
	}
	return false
}
