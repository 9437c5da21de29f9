package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestOrbitPoints(t *testing.T) {
	tests := []struct {
		name   string
		center math.Vec3
		radius float32
		n      int
	}{
		{"earth", math.Vec3{}, SunRadius + EarthDistance, 128},
		{"offset centre", math.V3(3, 1, -2), 10, 7},
		{"triangle", math.Vec3{}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := OrbitPoints(tt.center, tt.radius, tt.radius, tt.n)
			require.Len(t, pts, tt.n)
			for _, p := range pts {
				assert.InDelta(t, tt.radius, p.Distance(tt.center), 1e-3)
			}
		})
	}
}

func TestOrbitToggleRoundTrip(t *testing.T) {
	root := scenegraph.New("scene")
	o := NewOrbitPath(root, "earth-path", math.Vec3{}, 40, 40, 64, true)

	original := o.Material.Color
	mat := o.Node.Line.Material

	o.Toggle()
	assert.Equal(t, OrbitDimColor, o.Material.Color)
	assert.NotEqual(t, original, o.Material.Color)
	o.Toggle()

	assert.Equal(t, original, o.Material.Color)
	assert.Same(t, mat, o.Node.Line.Material, "toggling swaps colour, not material")
	assert.Same(t, root, o.Node.Parent(), "path stays in the scene")
}

func TestOrbitPathIsStatic(t *testing.T) {
	sc, err := Build(mustVariant(t, "solar-textured"), testOptions())
	require.NoError(t, err)

	o := sc.Orbit("earth")
	require.NotNil(t, o)
	assert.Same(t, sc.Scene.Root, o.Node.Parent())
	assert.True(t, o.Visible())
	assert.Len(t, o.Points(), 128)

	before := o.Node.WorldMatrix()
	for i := 0; i < 10; i++ {
		sc.Frame()
	}
	assert.Equal(t, before, o.Node.WorldMatrix())
}
