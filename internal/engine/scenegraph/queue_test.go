package scenegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestBuildQueueSortsTransparentBackToFront(t *testing.T) {
	s := NewScene(math.Color{})
	box := geometry.Box(1, 1, 1)

	solid := s.Add(NewMesh("solid", box, material.New(math.Hex(0xff0000))))
	solid.Position = math.V3(0, 0, -5)

	for _, z := range []float32{-2, -9, -4} {
		m := material.New(math.Hex(0xffffff))
		m.Transparent = true
		n := s.Add(NewMesh("glass", box, m))
		n.Position = math.V3(0, 0, z)
	}
	s.Add(New("pivot"))
	line := s.Add(New("orbit"))
	line.Line = &Line{Points: []math.Vec3{{}, {X: 1}}, Loop: true, Material: &material.Line{}}

	q := BuildQueue(s, math.Identity())

	require.Len(t, q.Opaque, 1)
	assert.Same(t, solid, q.Opaque[0].Node)
	require.Len(t, q.Transparent, 3)
	var depths []float32
	for _, it := range q.Transparent {
		depths = append(depths, it.Depth)
	}
	assert.Equal(t, []float32{-9, -4, -2}, depths)
	assert.Len(t, q.Lines, 1)
}

func TestBuildQueueResolvesLights(t *testing.T) {
	s := NewScene(math.Color{})
	holder := s.Add(New("holder"))
	holder.Position = math.V3(10, 0, 0)
	holder.Add(NewLight("point", PointLight, math.Hex(0xffffff), 0.5))

	sun := s.Add(NewLight("dir", DirectionalLight, math.Hex(0xffffff), 1))
	sun.Position = math.V3(0, 3, 4)

	for i := 0; i < MaxLights; i++ {
		s.Add(NewLight("extra", PointLight, math.Hex(0xffffff), 1))
	}

	q := BuildQueue(s, math.Identity())

	require.Len(t, q.Lights, MaxLights)
	assert.Equal(t, math.V3(10, 0, 0), q.Lights[0].Position)
	assert.InDelta(t, 0.5, q.Lights[0].Color.R, 1e-6)
	assert.Equal(t, DirectionalLight, q.Lights[1].Kind)
	assert.True(t, q.Lights[1].Position.ApproxEqual(math.V3(0, 0.6, 0.8), 1e-6))
}
