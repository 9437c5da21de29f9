package orrery

import (
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

// Orbit path colours. Hiding a path swaps to the dim colour; the node
// stays in the scene.
var (
	OrbitVisibleColor = math.Hex(0x5a5a5a)
	OrbitDimColor     = math.Hex(0x000000)
)

// OrbitPoints samples n points on an ellipse in the XZ plane around center.
func OrbitPoints(center math.Vec3, radiusX, radiusZ float32, n int) []math.Vec3 {
	return geometry.Ellipse(center, radiusX, radiusZ, n)
}

// OrbitPath is a fixed closed line marking an orbit.
type OrbitPath struct {
	Name     string
	Node     *scenegraph.Node
	Material *material.Line
	visible  bool
}

// NewOrbitPath adds a closed line loop directly under root, so it never
// moves with any pivot.
func NewOrbitPath(root *scenegraph.Node, name string, center math.Vec3, radiusX, radiusZ float32, n int, visible bool) *OrbitPath {
	mat := &material.Line{}
	node := scenegraph.New(name)
	node.Line = &scenegraph.Line{
		Points:   OrbitPoints(center, radiusX, radiusZ, n),
		Loop:     true,
		Material: mat,
	}
	root.Add(node)

	o := &OrbitPath{Name: name, Node: node, Material: mat}
	o.SetVisible(visible)
	return o
}

// Points returns the sampled curve.
func (o *OrbitPath) Points() []math.Vec3 {
	return o.Node.Line.Points
}

// Visible reports whether the path shows its bright colour.
func (o *OrbitPath) Visible() bool {
	return o.visible
}

// SetVisible swaps the line colour.
func (o *OrbitPath) SetVisible(v bool) {
	o.visible = v
	if v {
		o.Material.Color = OrbitVisibleColor
	} else {
		o.Material.Color = OrbitDimColor
	}
}

// Toggle flips visibility.
func (o *OrbitPath) Toggle() {
	o.SetVisible(!o.visible)
}
