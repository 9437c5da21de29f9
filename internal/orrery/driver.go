package orrery

import (
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

// Renderer draws a scene through a camera.
type Renderer interface {
	Render(scene *scenegraph.Scene, cam *camera.Perspective)
}

// DriverState is the animation driver's state.
type DriverState int

const (
	Stopped DriverState = iota
	Running
)

func (s DriverState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

type tracked struct {
	node  *scenegraph.Node
	delta math.Vec3
}

// Driver advances self-rotation once per tick and renders through the
// rig's active camera. Rotation is per tick, not per second.
type Driver struct {
	scene    *scenegraph.Scene
	rig      *Rig
	renderer Renderer
	allow    AllowList

	tracked []tracked
	state   DriverState
	ticks   uint64
}

// NewDriver returns a stopped driver. renderer may be nil to only animate.
func NewDriver(scene *scenegraph.Scene, rig *Rig, renderer Renderer, allow AllowList) *Driver {
	return &Driver{scene: scene, rig: rig, renderer: renderer, allow: allow}
}

// Track adds a node to rotate by delta each tick if its name is allowed.
func (d *Driver) Track(n *scenegraph.Node, delta math.Vec3) {
	d.tracked = append(d.tracked, tracked{node: n, delta: delta})
}

// Tracked returns how many nodes are tracked.
func (d *Driver) Tracked() int {
	return len(d.tracked)
}

// Start moves the driver to Running. There is no way back.
func (d *Driver) Start() {
	d.state = Running
}

// State returns the current state.
func (d *Driver) State() DriverState {
	return d.state
}

// Ticks returns how many ticks have run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Tick rotates allowed nodes, then renders. It does nothing until Start.
func (d *Driver) Tick() {
	if d.state != Running {
		return
	}
	for _, t := range d.tracked {
		if d.allow.Contains(t.node.Name) {
			t.node.RotateBy(t.delta)
		}
	}
	d.ticks++
	if d.renderer != nil && d.rig.Active() != nil {
		d.renderer.Render(d.scene, d.rig.Active())
	}
}
