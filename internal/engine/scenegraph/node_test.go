package scenegraph

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestAddReparents(t *testing.T) {
	a := New("a")
	b := New("b")
	c := New("c")

	a.Add(c)
	b.Add(c)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Node{c}, b.Children())
	assert.Same(t, b, c.Parent())

	assert.True(t, b.Remove(c))
	assert.False(t, b.Remove(c))
	assert.Nil(t, c.Parent())
}

func TestWorldMatrixComposesParents(t *testing.T) {
	pivot := New("pivot")
	pivot.Position = math.V3(0, 0, 0)
	pivot.Rotation = math.V3(0, stdmath.Pi/2, 0)

	planet := pivot.Add(New("planet"))
	planet.Position = math.V3(10, 0, 0)
	planet.Scale = math.Splat(2)

	// A quarter turn about Y carries +X onto -Z.
	pos := planet.WorldPosition()
	assert.True(t, pos.ApproxEqual(math.V3(0, 0, -10), 1e-5), "got %v", pos)

	edge := planet.WorldMatrix().TransformVec3(math.V3(1, 0, 0))
	assert.InDelta(t, 2, edge.Distance(pos), 1e-5)
}

func TestWalkWorldMatchesWorldMatrix(t *testing.T) {
	root := New("root")
	root.Position = math.V3(1, 2, 3)
	mid := root.Add(New("mid"))
	mid.Rotation = math.V3(0.3, 0.2, 0.1)
	leaf := mid.Add(New("leaf"))
	leaf.Position = math.V3(4, 0, 0)

	seen := map[string]math.Mat4{}
	mid.WalkWorld(func(n *Node, world math.Mat4) {
		seen[n.Name] = world
	})

	require.Len(t, seen, 2)
	for _, n := range []*Node{mid, leaf} {
		want := n.WorldMatrix()
		got := seen[n.Name]
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1e-5, "%s[%d]", n.Name, i)
		}
	}
}

func TestLookAtWorldTarget(t *testing.T) {
	parent := New("parent")
	parent.Position = math.V3(5, 0, 0)
	parent.Rotation = math.V3(0, 1, 0)
	cam := parent.Add(New("cam"))
	cam.Position = math.V3(0, 3, 4)

	target := math.V3(-2, 1, 7)
	cam.LookAt(target)

	w := cam.WorldMatrix()
	forward := w.TransformDir(math.V3(0, 0, -1)).Normalize()
	want := target.Sub(cam.WorldPosition()).Normalize()
	assert.True(t, forward.ApproxEqual(want, 1e-4), "forward %v, want %v", forward, want)
}

func TestWalkAndFind(t *testing.T) {
	s := NewScene(math.Hex(0x000000))
	sys := s.Add(New("system"))
	sys.Add(New("earth")).Add(New("moon"))
	sys.Add(New("mars"))
	s.Add(New("moon"))

	var names []string
	s.Root.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "earth"
	})
	assert.Equal(t, []string{s.Root.Name, "system", "earth", "mars", "moon"}, names)

	require.NotNil(t, s.Find("moon"))
	assert.Equal(t, "earth", s.Find("moon").Parent().Name)
	assert.Len(t, s.Root.FindAll("moon"), 2)
	assert.Nil(t, s.Find("pluto"))
}

func TestRotateBy(t *testing.T) {
	n := New("n")
	n.RotateBy(math.V3(0, 0.003, 0))
	n.RotateBy(math.V3(0, 0.003, 0))
	assert.InDelta(t, 0.006, n.Rotation.Y, 1e-7)
}
