package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 2, color.NRGBA{0, 0, 255, 128})
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checker()))

	img, err := Decode("checker.png", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 3, img.Height)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.At(0, 0))
	// Bottom row of the source is the first row of the buffer.
	assert.Equal(t, img.At(0, 2), color.NRGBA{img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]})
	assert.True(t, img.HasAlpha())
}

func TestTranslucentPixelsStayStraightAlpha(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checker()))
	img, err := Decode("checker.png", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 128}, img.At(1, 2))

	// Premultiplied sources are converted back to straight alpha.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 128, 128})
	px := FromImage("clouds", src).At(0, 0)
	assert.Equal(t, uint8(128), px.A)
	assert.InDelta(t, 255, int(px.B), 1)
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(3, 3, color.RGBA{10, 20, 30, 255})
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	img, err := Decode("tile.bmp", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.At(3, 3))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode("broken.jpg", []byte("not an image"))
	assert.ErrorContains(t, err, "broken.jpg")
}

func TestSolid(t *testing.T) {
	img := Solid("white", color.NRGBA{255, 255, 255, 255})
	assert.Equal(t, 1, img.Width)
	assert.False(t, img.HasAlpha())
}
