package orrery

// RenderTarget is a drawable buffer that follows the viewport size.
type RenderTarget interface {
	Resize(width, height int)
}

// Viewport owns the drawable size and keeps every camera's aspect ratio
// in step with it.
type Viewport struct {
	width, height int
	rig           *Rig
	target        RenderTarget
}

// NewViewport applies the initial size to rig and target.
func NewViewport(rig *Rig, target RenderTarget, width, height int) *Viewport {
	v := &Viewport{rig: rig, target: target}
	v.Resize(width, height)
	return v
}

// SetTarget replaces the render target and sizes it to the viewport.
func (v *Viewport) SetTarget(t RenderTarget) {
	v.target = t
	if t != nil && v.width > 0 {
		t.Resize(v.width, v.height)
	}
}

// Resize updates every camera's aspect to width/height and resizes the
// target. Degenerate sizes, as reported for minimized windows, are ignored.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width, v.height = width, height
	aspect := float32(width) / float32(height)
	for _, c := range v.rig.Cameras() {
		c.SetAspect(aspect)
	}
	if v.target != nil {
		v.target.Resize(width, height)
	}
}

// Size returns the current drawable size.
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Aspect returns width/height.
func (v *Viewport) Aspect() float32 {
	if v.height == 0 {
		return 1
	}
	return float32(v.width) / float32(v.height)
}
