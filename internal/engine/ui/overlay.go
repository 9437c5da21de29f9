package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/renderer"
)

// OverlayInfo is what the stats overlay shows besides frame timing.
type OverlayInfo struct {
	Variant string
	Camera  string
	Render  renderer.Stats
	Pending int // asset loads not yet applied
}

// DrawOverlay draws frame and render statistics in the top-left corner.
func DrawOverlay(stats *debug.FrameStats, info OverlayInfo) {
	pos, _ := WorkArea()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+10))
	imgui.SetNextWindowBgAlpha(0.6)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsAlwaysAutoResize

	if imgui.BeginV("##Stats", nil, flags) {
		fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if stats.FPS() < 30 {
			fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
		} else if stats.FPS() < 60 {
			fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
		}
		imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", stats.FPS()))
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", float64(stats.FrameTime().Microseconds())/1000))

		imgui.Separator()
		imgui.Text(fmt.Sprintf("Variant: %s", info.Variant))
		imgui.Text(fmt.Sprintf("Camera: %s", info.Camera))
		imgui.Text(fmt.Sprintf("Draw calls: %d  Lights: %d", info.Render.DrawCalls, info.Render.Lights))
		imgui.Text(fmt.Sprintf("Meshes: %d  Textures: %d", info.Render.Meshes, info.Render.Textures))
		if info.Pending > 0 {
			imgui.Text(fmt.Sprintf("Loading: %d", info.Pending))
		}
		imgui.Text(fmt.Sprintf("Heap: %s", debug.FormatBytes(stats.HeapAlloc())))
	}
	imgui.End()
}
