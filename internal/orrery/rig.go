package orrery

import (
	"fmt"
	"slices"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

// Rig is an ordered set of named cameras with exactly one active.
type Rig struct {
	names   []string
	cameras map[string]*camera.Perspective

	active     *camera.Perspective
	activeName string
}

// NewRig returns an empty rig.
func NewRig() *Rig {
	return &Rig{cameras: map[string]*camera.Perspective{}}
}

// Add registers a camera under name. The first camera added becomes active.
func (r *Rig) Add(name string, cam *camera.Perspective) error {
	if _, ok := r.cameras[name]; ok {
		return fmt.Errorf("camera %q already registered", name)
	}
	r.names = append(r.names, name)
	r.cameras[name] = cam
	if r.active == nil {
		r.active, r.activeName = cam, name
	}
	return nil
}

// Activate makes the named camera active. Activating the active camera
// again changes nothing.
func (r *Rig) Activate(name string) error {
	cam, ok := r.cameras[name]
	if !ok {
		return fmt.Errorf("unknown camera %q", name)
	}
	r.active, r.activeName = cam, name
	return nil
}

// Active returns the active camera, or nil for an empty rig.
func (r *Rig) Active() *camera.Perspective {
	return r.active
}

// ActiveName returns the active camera's name.
func (r *Rig) ActiveName() string {
	return r.activeName
}

// Next activates the camera registered after the active one, wrapping
// around, and returns its name.
func (r *Rig) Next() string {
	if len(r.names) == 0 {
		return ""
	}
	i := slices.Index(r.names, r.activeName)
	name := r.names[(i+1)%len(r.names)]
	r.active, r.activeName = r.cameras[name], name
	return name
}

// Camera returns a camera by name, or nil.
func (r *Rig) Camera(name string) *camera.Perspective {
	return r.cameras[name]
}

// Names returns camera names in registration order.
func (r *Rig) Names() []string {
	return append([]string(nil), r.names...)
}

// Cameras returns the cameras in registration order.
func (r *Rig) Cameras() []*camera.Perspective {
	out := make([]*camera.Perspective, len(r.names))
	for i, n := range r.names {
		out[i] = r.cameras[n]
	}
	return out
}

// NewChaseCamera attaches a camera to pivot at offset and aims it at the
// pivot's origin. The aim is set once; it is not updated as things move.
func NewChaseCamera(name string, pivot *scenegraph.Node, offset math.Vec3, fov, aspect float32) *camera.Perspective {
	cam := camera.NewPerspective(name, fov, aspect, 0.01, 1000)
	cam.Node.Position = offset
	pivot.Add(cam.Node)
	cam.Node.LookAtLocal(math.Vec3{})
	return cam
}
