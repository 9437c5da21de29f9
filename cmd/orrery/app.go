package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/framebuffer"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/ui"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orrery"
)

// hostWindow is the window backend the app drives.
type hostWindow interface {
	Run(frame func())
	SetWindowTitle(title string)
	SetTargetFPS(fps uint)
	OnClose(fn func())
	Close()
}

var (
	newBackend = func(title string, width, height int, fontPath string) (hostWindow, error) {
		return ui.NewBackend(title, width, height, fontPath)
	}
	newRenderer = renderer.New
)

// App is the imgui host: the scene is drawn into an offscreen target,
// shown as an image, with the control panel docked beside it.
type App struct {
	session  *app.Session
	backend  hostWindow
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	scene    *orrery.SceneContext
	view     ui.SceneView
	shots    *debug.ScreenshotCapture
	stats    debug.FrameStats
	log      *zap.Logger

	lastFrame         time.Time
	title             string
	screenshotMsg     string
	screenshotMsgTime time.Time
}

// NewApp creates the window and builds the session's scene.
func NewApp(s *app.Session) (*App, error) {
	cfg := s.Config
	a := &App{
		session: s,
		shots:   debug.NewScreenshotCapture(cfg.Data.ScreenshotDir, "orrery"),
		log:     logger.Named("orrery"),
	}

	var err error
	a.backend, err = newBackend("Orrery - "+s.Variant.Name, cfg.Graphics.Width, cfg.Graphics.Height, s.FontPath())
	if err != nil {
		return nil, err
	}
	a.backend.OnClose(a.releaseGPU)
	if cfg.Graphics.VSync {
		a.backend.SetTargetFPS(60)
	}

	w, h := cfg.Graphics.Width, cfg.Graphics.Height
	a.renderer, err = newRenderer(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.target, err = framebuffer.New(w, h)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.renderer.SetTarget(a.target)

	a.scene, err = s.Build(a.renderer, a.target, w, h)
	if err != nil {
		a.Close()
		return nil, err
	}
	s.StartMusic()
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() {
	a.lastFrame = time.Now()
	a.backend.Run(a.render)
}

func (a *App) render() {
	now := time.Now()
	a.stats.Update(now.Sub(a.lastFrame))
	a.lastFrame = now

	sc := a.scene
	var inset float32
	if sc.Panel != nil {
		inset = ui.PanelWidth
	}

	// The image is recorded now and drawn when imgui renders, after the
	// scene below has been drawn into the target.
	w, h := a.view.Draw(a.target.ColorTexture(), inset, a.orbitControls())
	sc.Viewport.Resize(w, h)
	if c := a.orbitControls(); c != nil {
		c.Apply()
	}
	sc.Frame()

	if ui.IsKeyPressed(imgui.KeyF12) {
		a.captureScreenshot()
	}

	if sc.Panel != nil {
		ui.DrawPanel(sc.Panel, a.log)
	}
	if a.session.Config.Graphics.ShowFPS {
		ui.DrawOverlay(&a.stats, ui.OverlayInfo{
			Variant: sc.Variant.Name,
			Camera:  sc.Rig.ActiveName(),
			Render:  a.renderer.Stats(),
			Pending: a.session.Loader.Pending(),
		})
	}
	a.drawScreenshotNotice()
	a.updateTitle()
}

func (a *App) updateTitle() {
	title := fmt.Sprintf("Orrery - %s - %s", a.scene.Variant.Name, a.scene.Rig.ActiveName())
	if title != a.title {
		a.backend.SetWindowTitle(title)
		a.title = title
	}
}

// orbitControls returns the controls while the overview camera is active.
func (a *App) orbitControls() *camera.OrbitControls {
	c := a.scene.Controls
	if c == nil || a.scene.Rig.Active() != c.Camera() {
		return nil
	}
	return c
}

func (a *App) captureScreenshot() {
	w, h := a.target.Size()
	path, err := a.shots.CaptureFromPixels(a.target.ReadPixels(), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		a.screenshotMsg = "Screenshot failed: " + err.Error()
	} else {
		a.log.Info("screenshot saved", zap.String("path", path))
		a.screenshotMsg = "Saved " + path
	}
	a.screenshotMsgTime = time.Now()
}

func (a *App) drawScreenshotNotice() {
	if a.screenshotMsg == "" || time.Since(a.screenshotMsgTime) > 3*time.Second {
		return
	}
	pos, size := ui.WorkArea()
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+size.Y-40))
	imgui.SetNextWindowBgAlpha(0.85)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##ScreenshotNotify", nil, flags) {
		imgui.Text(a.screenshotMsg)
	}
	imgui.End()
}

// Close releases GPU resources and the window. It is safe after Run and on
// a partially constructed app.
func (a *App) Close() {
	a.log.Info("closing orrery host")
	a.releaseGPU()
	if a.backend != nil {
		a.backend.Close()
	}
}

// releaseGPU frees GL objects. It runs from the backend's teardown hook
// while the context is current, or from Close, whichever comes first.
func (a *App) releaseGPU() {
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.target != nil {
		a.target.Destroy()
		a.target = nil
	}
}
