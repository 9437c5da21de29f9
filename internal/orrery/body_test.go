package orrery

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

func pngFile(t *testing.T, c color.Color) *fstest.MapFile {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &fstest.MapFile{Data: buf.Bytes()}
}

func TestBodyAttachedBeforeTexturesArrive(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"day.png": pngFile(t, color.NRGBA{0, 0, 255, 255}),
	})
	parent := scenegraph.New("parent")

	b := NewBody(l, BodyOptions{
		Name:     "earth",
		Radius:   2,
		Offset:   math.Vec2{X: 10, Y: 1},
		Parent:   parent,
		Color:    math.Hex(0x2233ff),
		Textures: material.TextureSet{Map: "day.png", BumpMap: "missing.png"},
	})

	require.Same(t, parent, b.Node.Parent())
	assert.Equal(t, math.V3(10, 1, 0), b.Node.Position)
	assert.Equal(t, math.Splat(2), b.Node.Scale)
	assert.Equal(t, material.DoubleSide, b.Material.Side)
	assert.Nil(t, b.Material.Texture(material.Map), "nothing applied before Poll")

	drain(t, l)

	img := b.Material.Texture(material.Map)
	require.NotNil(t, img)
	assert.Equal(t, 2, img.Width)
	assert.Nil(t, b.Material.Texture(material.BumpMap), "failed load leaves the channel empty")
}

func TestBodyOverridesAndAtmosphere(t *testing.T) {
	shininess := float32(5)
	opacity := float32(0.5)
	b := NewBody(nil, BodyOptions{
		Name:     "earth",
		Radius:   2,
		Material: material.Overrides{Shininess: &shininess},
		Atmosphere: &AtmosphereOptions{
			RadiusDelta: 0.5,
			Material:    material.Overrides{Opacity: &opacity},
		},
	})

	assert.Equal(t, float32(5), b.Material.Shininess)
	assert.Nil(t, b.Node.Parent())

	require.NotNil(t, b.Atmosphere)
	assert.Equal(t, "earth-atmosphere", b.Atmosphere.Name)
	assert.Same(t, b.Node, b.Atmosphere.Parent())
	assert.Equal(t, math.Splat(1.25), b.Atmosphere.Scale)

	m := b.AtmosphereMaterial
	assert.True(t, m.Transparent)
	assert.False(t, m.DepthWrite)
	assert.Equal(t, float32(0.5), m.Opacity)

	// The shell's world radius is the body radius plus the delta.
	world := b.Atmosphere.WorldMatrix()
	edge := world.TransformVec3(math.V3(1, 0, 0))
	assert.InDelta(t, 2.5, edge.Length(), 1e-5)
}

func TestBodyWorldPosition(t *testing.T) {
	pivot := scenegraph.New("pivot")
	pivot.Position = math.V3(5, 0, 0)
	b := NewBody(nil, BodyOptions{Name: "moon", Radius: 1, Offset: math.Vec2{X: 3}, Parent: pivot})

	assert.True(t, b.WorldPosition().ApproxEqual(math.V3(8, 0, 0), 1e-6))
}
