package orrery

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Faultbox/orrery/internal/engine/material"
)

func TestShapesScene(t *testing.T) {
	r := &recordingRenderer{}
	opts := testOptions()
	opts.Renderer = r
	sc, err := Build(mustVariant(t, "shapes"), opts)
	require.NoError(t, err)

	assert.Nil(t, sc.System)
	assert.Nil(t, sc.Panel)
	assert.Equal(t, 4, sc.Driver.Tracked())

	for i, x := range []float32{0, 2, -2} {
		box := sc.Scene.Find(boxName(i))
		require.NotNil(t, box)
		assert.Equal(t, x, box.Position.X)
	}
	edges := sc.Scene.Find("edges")
	require.NotNil(t, edges)
	require.NotNil(t, edges.Line)
	assert.Len(t, edges.Line.Points, 24)

	sc.Frame()
	sc.Frame()
	b0 := sc.Scene.Find("box-0").Rotation
	b2 := sc.Scene.Find("box-2").Rotation
	assert.InDelta(t, 0.02, b0.X, 1e-6)
	assert.InDelta(t, 0.02, b0.Y, 1e-6)
	assert.Greater(t, b2.X, b0.X, "later shapes spin faster")
	assert.Equal(t, 2, r.frames)
}

func TestShapesLabelAppearsAfterFontLoads(t *testing.T) {
	l := newLoader(t, fstest.MapFS{
		"fonts/regular.ttf": {Data: goregular.TTF},
	})
	opts := testOptions()
	opts.Loader = l
	opts.FontPath = "fonts/regular.ttf"
	sc, err := Build(mustVariant(t, "shapes"), opts)
	require.NoError(t, err)

	assert.Nil(t, sc.Scene.Find("label"))

	drain(t, l)

	label := sc.Scene.Find("label")
	require.NotNil(t, label)
	assert.Equal(t, float32(4), label.Position.Y)
	text := sc.Scene.Find("label-text")
	require.NotNil(t, text)
	require.NotNil(t, text.Mesh)
	assert.NotNil(t, text.Mesh.Material.Texture(material.Map))
	assert.Equal(t, 5, sc.Driver.Tracked())
}

func TestShapesMissingFontIsNotFatal(t *testing.T) {
	l := newLoader(t, fstest.MapFS{})
	opts := testOptions()
	opts.Loader = l
	opts.FontPath = "fonts/none.ttf"
	sc, err := Build(mustVariant(t, "shapes"), opts)
	require.NoError(t, err)

	drain(t, l)
	assert.Nil(t, sc.Scene.Find("label"))
	assert.Equal(t, 4, sc.Driver.Tracked())
}
