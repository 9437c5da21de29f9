package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/orrery"
)

// PanelWidth is the width of the docked control panel.
const PanelWidth = 260

// DrawPanel draws p docked to the right edge of the work area. Failing
// actions are logged.
func DrawPanel(p *orrery.Panel, log *zap.Logger) {
	pos, size := WorkArea()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+size.X-PanelWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(PanelWidth, size.Y))

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	if imgui.BeginV(p.Title, nil, flags) {
		if len(p.Actions) > 0 {
			imgui.SeparatorText("Camera")
			for _, a := range p.Actions {
				if imgui.Button(a.Label) {
					if err := a.Invoke(); err != nil {
						log.Warn("panel action failed", zap.String("action", a.Label), zap.Error(err))
					}
				}
			}
		}

		if len(p.Toggles) > 0 {
			imgui.SeparatorText("Display")
			for _, t := range p.Toggles {
				v := t.Value
				if imgui.Checkbox(t.Label, &v) {
					t.Set(v)
				}
			}
		}

		for _, block := range p.Info {
			if imgui.CollapsingHeaderTreeNodeFlagsV(block.Title, 0) {
				for _, row := range block.Rows {
					imgui.Text(row.Label + ": " + row.Value)
				}
			}
		}
	}
	imgui.End()
}
