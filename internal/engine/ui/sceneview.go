package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/orrery/internal/engine/camera"
)

// SceneView shows an offscreen colour texture in a borderless window and
// feeds pointer drags and wheel motion to orbit controls.
type SceneView struct {
	lastMouse imgui.Vec2
}

// Draw fills the work area minus rightInset with the texture. It returns
// the pixel size the view occupies so the caller can resize its render
// target. controls may be nil.
func (v *SceneView) Draw(texture uint32, rightInset float32, controls *camera.OrbitControls) (int, int) {
	pos, size := WorkArea()
	w := max(size.X-rightInset, 1)
	h := max(size.Y, 1)

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoBringToFrontOnFocus | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Scene", nil, flags) {
		// GL textures are bottom-up, so flip V.
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texture))
		imgui.ImageWithBgV(
			*texRef,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0),
			imgui.NewVec4(0, 0, 0, 1),
			imgui.NewVec4(1, 1, 1, 1),
		)

		mouse := imgui.MousePos()
		if controls != nil && imgui.IsItemHovered() {
			if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
				controls.HandleDrag(mouse.X-v.lastMouse.X, mouse.Y-v.lastMouse.Y)
			}
			if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
				controls.HandleZoom(wheel)
			}
		}
		v.lastMouse = mouse
	}
	imgui.End()
	imgui.PopStyleVar()

	fbw, fbh := framebufferScale()
	return int(w * fbw), int(h * fbh)
}

func framebufferScale() (float32, float32) {
	s := imgui.CurrentIO().DisplayFramebufferScale()
	if s.X <= 0 || s.Y <= 0 {
		return 1, 1
	}
	return s.X, s.Y
}
