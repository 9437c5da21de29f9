package scenegraph

import (
	"sort"

	"github.com/Faultbox/orrery/pkg/math"
)

// MaxLights is the number of lights a queue carries to the shader.
const MaxLights = 4

// DrawItem is a node ready to draw with its world matrix resolved.
type DrawItem struct {
	Node  *Node
	World math.Mat4
	// Depth is the view-space z of the node's origin; more negative is
	// further from the camera.
	Depth float32
}

// LightItem is a light resolved to world space. For a directional light
// Position is the direction the light comes from.
type LightItem struct {
	Kind     LightKind
	Position math.Vec3
	Color    math.Color // premultiplied by intensity
}

// Queue is one frame's draw order.
type Queue struct {
	Opaque      []DrawItem
	Transparent []DrawItem // sorted back to front
	Lines       []DrawItem
	Lights      []LightItem
}

// BuildQueue walks the scene once and sorts what it finds for drawing.
// Lights past MaxLights are dropped.
func BuildQueue(s *Scene, view math.Mat4) Queue {
	var q Queue
	s.Root.WalkWorld(func(n *Node, world math.Mat4) {
		switch {
		case n.Light != nil:
			if len(q.Lights) < MaxLights {
				q.Lights = append(q.Lights, resolveLight(n.Light, world))
			}
		case n.Mesh != nil && n.Mesh.Geometry != nil && n.Mesh.Material != nil:
			item := DrawItem{Node: n, World: world, Depth: view.TransformVec3(world.Translation()).Z}
			if n.Mesh.Material.Transparent {
				q.Transparent = append(q.Transparent, item)
			} else {
				q.Opaque = append(q.Opaque, item)
			}
		case n.Line != nil && n.Line.Material != nil && len(n.Line.Points) > 1:
			q.Lines = append(q.Lines, DrawItem{Node: n, World: world})
		}
	})
	sort.SliceStable(q.Transparent, func(i, j int) bool {
		return q.Transparent[i].Depth < q.Transparent[j].Depth
	})
	return q
}

func resolveLight(l *Light, world math.Mat4) LightItem {
	c := math.Color{R: l.Color.R * l.Intensity, G: l.Color.G * l.Intensity, B: l.Color.B * l.Intensity}
	pos := world.Translation()
	if l.Kind == DirectionalLight {
		pos = pos.Normalize()
	}
	return LightItem{Kind: l.Kind, Position: pos, Color: c}
}
