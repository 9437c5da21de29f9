package scenegraph

import "github.com/Faultbox/orrery/pkg/math"

// Scene is the root of everything the renderer draws.
type Scene struct {
	Root       *Node
	Background math.Color
	Ambient    math.Color
}

// NewScene returns a scene with an empty root node.
func NewScene(background math.Color) *Scene {
	return &Scene{
		Root:       New("scene"),
		Background: background,
		Ambient:    math.Color{R: 0.1, G: 0.1, B: 0.1},
	}
}

// Add attaches n to the scene root.
func (s *Scene) Add(n *Node) *Node {
	return s.Root.Add(n)
}

// Find looks a node up by name anywhere in the scene.
func (s *Scene) Find(name string) *Node {
	return s.Root.Find(name)
}
