package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/framebuffer"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orrery"
)

// Fundamentals runs a scene in a plain SDL2 window without the control
// panel. Keys: Escape quits, C cycles cameras, M mutes, F11 toggles
// fullscreen, F12 saves a screenshot. Dragging orbits the overview camera
// and the wheel zooms.
type Fundamentals struct {
	session  *app.Session
	window   *window.Window
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	input    *input.Input
	scene    *orrery.SceneContext
	shots    *debug.ScreenshotCapture
	stats    debug.FrameStats
	log      *zap.Logger
	running  bool
}

// NewFundamentals opens the window and builds the session's scene.
func NewFundamentals(s *app.Session) (*Fundamentals, error) {
	cfg := s.Config
	f := &Fundamentals{
		session: s,
		input:   input.New(),
		shots:   debug.NewScreenshotCapture(cfg.Data.ScreenshotDir, "orrery"),
		log:     logger.Named("fundamentals"),
	}

	var err error
	f.window, err = window.New(window.Config{
		Title:      "Orrery",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the window's GL context.
	w, h := f.window.DrawableSize()
	f.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	f.target, err = framebuffer.New(w, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.renderer.SetTarget(f.target)

	if s.Variant.Panel {
		f.log.Info("control panel is only drawn by the orrery host", zap.String("variant", s.Variant.Name))
	}
	f.scene, err = s.Build(f.renderer, f.target, w, h)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.StartMusic()
	f.updateTitle()
	return f, nil
}

// Run drives frames until the window closes or Escape is pressed.
func (f *Fundamentals) Run() error {
	f.running = true
	lastTime := time.Now()
	fpsTimer := lastTime

	f.log.Info("starting render loop")

	for f.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if f.input.Update() {
			f.running = false
			break
		}
		f.handleEvents()

		if c := f.scene.Controls; c != nil && f.scene.Rig.Active() == c.Camera() {
			c.Apply()
		}
		f.scene.Frame()

		w, h := f.window.DrawableSize()
		f.target.BlitToScreen(w, h)
		f.window.SwapBuffers()

		f.stats.Update(dt)
		if f.session.Config.Graphics.ShowFPS && now.Sub(fpsTimer) >= time.Second {
			f.log.Debug("fps",
				zap.Float64("fps", f.stats.FPS()),
				zap.Int("draw_calls", f.renderer.Stats().DrawCalls),
				zap.Int("pending", f.session.Loader.Pending()),
			)
			fpsTimer = now
		}
	}
	return nil
}

func (f *Fundamentals) handleEvents() {
	sc := f.scene
	orbiting := sc.Controls != nil && sc.Rig.Active() == sc.Controls.Camera()

	for _, e := range f.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			sc.Viewport.Resize(f.window.DrawableSize())
		case input.EventMouseDrag:
			if orbiting {
				sc.Controls.HandleDrag(e.DX, e.DY)
			}
		case input.EventMouseWheel:
			if orbiting {
				sc.Controls.HandleZoom(e.DY)
			}
		case input.EventKeyDown:
			f.handleKey(e.Key)
		}
	}
}

func (f *Fundamentals) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE:
		f.running = false
	case sdl.K_c:
		name := f.scene.Rig.Next()
		f.log.Debug("camera switched", zap.String("camera", name))
		f.updateTitle()
	case sdl.K_m:
		if m := f.session.Music; m != nil {
			m.SetMuted(!m.Muted())
		}
	case sdl.K_F11:
		f.window.ToggleFullscreen()
	case sdl.K_F12:
		w, h := f.target.Size()
		path, err := f.shots.CaptureFromPixels(f.target.ReadPixels(), w, h)
		if err != nil {
			f.log.Warn("screenshot failed", zap.Error(err))
			return
		}
		f.log.Info("screenshot saved", zap.String("path", path))
	}
}

func (f *Fundamentals) updateTitle() {
	f.window.SetTitle(fmt.Sprintf("Orrery - %s - %s", f.session.Variant.Name, f.scene.Rig.ActiveName()))
}

// Close releases GPU resources and the window. The session is closed by
// its owner.
func (f *Fundamentals) Close() {
	f.log.Info("closing fundamentals host")

	if f.renderer != nil {
		f.renderer.Close()
	}
	if f.target != nil {
		f.target.Destroy()
	}
	if f.window != nil {
		f.window.Close()
	}
}
