package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestSphere(t *testing.T) {
	g := Sphere(2, 16, 8)

	require.Equal(t, 17*9, g.VertexCount())
	// Pole rows contribute one triangle per segment, others two.
	assert.Len(t, g.Indices, 3*(16*2*(8-2)+16*2))

	for i := 0; i < g.VertexCount(); i++ {
		p := g.Position(i)
		assert.InDelta(t, 2, p.Length(), 1e-4, "vertex %d off the sphere", i)
		assert.InDelta(t, 1, g.Normal(i).Length(), 1e-4)
	}
	for _, idx := range g.Indices {
		assert.Less(t, int(idx), g.VertexCount())
	}
}

func TestSphereClampsSegments(t *testing.T) {
	g := Sphere(1, 0, 0)
	assert.Equal(t, 4*3, g.VertexCount())
}

func TestBox(t *testing.T) {
	g := Box(1, 2, 3)
	require.Equal(t, 24, g.VertexCount())
	assert.Len(t, g.Indices, 36)

	for i := 0; i < g.VertexCount(); i++ {
		p := g.Position(i)
		assert.InDelta(t, 0.5, abs(p.X), 1e-6)
		assert.InDelta(t, 1, abs(p.Y), 1e-6)
		assert.InDelta(t, 1.5, abs(p.Z), 1e-6)
	}
}

func TestBoxWindingMatchesNormals(t *testing.T) {
	g := Box(1, 1, 1)
	for i := 0; i < len(g.Indices); i += 3 {
		a, b, c := g.Position(int(g.Indices[i])), g.Position(int(g.Indices[i+1])), g.Position(int(g.Indices[i+2]))
		face := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.True(t, face.ApproxEqual(g.Normal(int(g.Indices[i])), 1e-5), "triangle %d winds against its normal", i/3)
	}
}

func TestBoxEdges(t *testing.T) {
	edges := BoxEdges(2, 2, 2)
	require.Len(t, edges, 24)
	for i := 0; i < len(edges); i += 2 {
		assert.InDelta(t, 2, edges[i].Distance(edges[i+1]), 1e-6)
	}
}

func TestEllipse(t *testing.T) {
	center := math.V3(1, 2, 3)
	pts := Ellipse(center, 5, 5, 64)
	require.Len(t, pts, 64)
	for _, p := range pts {
		assert.InDelta(t, 5, p.Distance(center), 1e-4)
		assert.Equal(t, float32(2), p.Y)
	}
	assert.Nil(t, Ellipse(center, 1, 1, 0))
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
