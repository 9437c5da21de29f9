// Package camera provides perspective cameras that live in the scene graph.
package camera

import (
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

// Perspective is a projection camera. Its view transform comes from the
// node it owns, so parenting the node to a pivot makes the camera follow it.
type Perspective struct {
	Node *scenegraph.Node

	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective returns a camera at the origin looking down -Z.
func NewPerspective(name string, fov, aspect, near, far float32) *Perspective {
	return &Perspective{
		Node:   scenegraph.New(name),
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Name returns the camera node's name.
func (c *Perspective) Name() string {
	return c.Node.Name
}

// SetAspect updates the aspect ratio used by Projection.
func (c *Perspective) SetAspect(aspect float32) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// Projection returns the projection matrix.
func (c *Perspective) Projection() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c *Perspective) View() math.Mat4 {
	return c.Node.WorldMatrix().Inverse()
}

// Position returns the camera's world position.
func (c *Perspective) Position() math.Vec3 {
	return c.Node.WorldPosition()
}
