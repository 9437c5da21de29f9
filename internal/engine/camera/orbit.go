package camera

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// OrbitControls moves a camera on a sphere around a target point in
// response to mouse drag and wheel input.
type OrbitControls struct {
	Target math.Vec3

	Distance float32
	Pitch    float32 // radians, positive looks down on the target
	Yaw      float32 // radians, 0 places the camera on +Z

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	cam *Perspective
}

// NewOrbitControls takes over cam, keeping its current distance and angles
// relative to target.
func NewOrbitControls(cam *Perspective, target math.Vec3) *OrbitControls {
	o := &OrbitControls{
		Target:          target,
		MinDistance:     1,
		MaxDistance:     900,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		cam:             cam,
	}
	offset := cam.Node.Position.Sub(target)
	o.Distance = offset.Length()
	if o.Distance > 0 {
		o.Pitch = float32(gomath.Asin(float64(offset.Y / o.Distance)))
		o.Yaw = float32(gomath.Atan2(float64(offset.X), float64(offset.Z)))
	}
	o.Apply()
	return o
}

// Camera returns the controlled camera.
func (o *OrbitControls) Camera() *Perspective {
	return o.cam
}

// Offset returns the camera position relative to the target.
func (o *OrbitControls) Offset() math.Vec3 {
	sp, cp := gomath.Sincos(float64(o.Pitch))
	sy, cy := gomath.Sincos(float64(o.Yaw))
	return math.V3(
		o.Distance*float32(cp*sy),
		o.Distance*float32(sp),
		o.Distance*float32(cp*cy),
	)
}

// HandleDrag rotates around the target by a mouse delta in pixels.
func (o *OrbitControls) HandleDrag(dx, dy float32) {
	o.Yaw -= dx * o.DragSensitivity
	o.Pitch = clamp(o.Pitch+dy*o.DragSensitivity, o.MinPitch, o.MaxPitch)
	o.Apply()
}

// HandleZoom moves towards (positive delta) or away from the target.
func (o *OrbitControls) HandleZoom(delta float32) {
	o.Distance = clamp(o.Distance-delta*o.Distance*o.ZoomSensitivity, o.MinDistance, o.MaxDistance)
	o.Apply()
}

// Apply writes the orbit state to the camera node.
func (o *OrbitControls) Apply() {
	n := o.cam.Node
	n.Position = o.Target.Add(o.Offset())
	n.LookAt(o.Target)
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
