// Package scenegraph implements the transform hierarchy rendered by the engine.
//
// A Node carries a position, Euler rotation (radians, applied Y then X then Z)
// and scale. Its world matrix is its parent's world matrix times its local
// matrix, so moving or rotating a node carries all of its descendants along.
package scenegraph

import (
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/pkg/math"
)

// Node is a transform in the scene hierarchy. A parent owns its children.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3

	// At most one of these is normally set; a node with none is a pivot.
	Mesh  *Mesh
	Line  *Line
	Light *Light

	parent   *Node
	children []*Node
}

// Mesh is a triangle geometry drawn with a surface material.
type Mesh struct {
	Geometry *geometry.Geometry
	Material *material.Material
}

// Line is a polyline drawn with a flat colour.
type Line struct {
	Points   []math.Vec3
	Loop     bool // connect the last point back to the first
	Segments bool // draw pairs of points as separate segments
	Material *material.Line
}

// LightKind selects how a Light contributes to shading.
type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
)

// Light illuminates meshes. A point light shines from the node's world
// position; a directional light shines from the node's world position towards
// the world origin.
type Light struct {
	Kind      LightKind
	Color     math.Color
	Intensity float32
}

// New returns an empty node with unit scale.
func New(name string) *Node {
	return &Node{Name: name, Scale: math.Splat(1)}
}

// NewMesh returns a node drawing g with m.
func NewMesh(name string, g *geometry.Geometry, m *material.Material) *Node {
	n := New(name)
	n.Mesh = &Mesh{Geometry: g, Material: m}
	return n
}

// NewLight returns a node carrying a light.
func NewLight(name string, kind LightKind, color math.Color, intensity float32) *Node {
	n := New(name)
	n.Light = &Light{Kind: kind, Color: color, Intensity: intensity}
	return n
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) *Node {
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Remove detaches child from n. It reports whether child was attached.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order.
// The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// LocalMatrix returns T * Ry * Rx * Rz * S.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix composes the local matrices from the root down to n.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().Translation()
}

// RotateBy adds delta to the node's Euler angles.
func (n *Node) RotateBy(delta math.Vec3) {
	n.Rotation = n.Rotation.Add(delta)
}

// LookAtLocal orients the node's -Z axis towards target, given in the
// parent's coordinate space.
func (n *Node) LookAtLocal(target math.Vec3) {
	n.Rotation = math.LookAtEuler(n.Position, target)
}

// LookAt orients the node's -Z axis towards a world-space point.
func (n *Node) LookAt(target math.Vec3) {
	if n.parent != nil {
		target = n.parent.WorldMatrix().Inverse().TransformVec3(target)
	}
	n.LookAtLocal(target)
}

// Walk visits n and its descendants depth-first in insertion order.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// WalkWorld is Walk with each node's world matrix computed along the way.
func (n *Node) WalkWorld(fn func(node *Node, world math.Mat4)) {
	var parent math.Mat4
	if n.parent != nil {
		parent = n.parent.WorldMatrix()
	} else {
		parent = math.Identity()
	}
	n.walkWorld(parent, fn)
}

func (n *Node) walkWorld(parent math.Mat4, fn func(*Node, math.Mat4)) {
	world := parent.Mul(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.walkWorld(world, fn)
	}
}

// Find returns the first node named name in n's subtree, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node named name in n's subtree.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Name == name {
			out = append(out, c)
		}
		return true
	})
	return out
}
