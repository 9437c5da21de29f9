// Package ui draws the imgui surfaces of the orrery host: the scene view,
// the control panel and the stats overlay.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// Backend wraps the imgui SDL backend, which owns the window and the GL
// context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
	ran     bool
	onClose func()
}

// NewBackend creates the window. fontPath may be empty or missing, in
// which case imgui's built-in font is used.
func NewBackend(title string, width, height int, fontPath string) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added after the context exists and before the first
	// frame builds the atlas.
	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont(fontPath)
	})
	b.backend.SetBeforeDestroyContextHook(func() {
		if b.onClose != nil {
			b.onClose()
		}
	})

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	b.backend.CreateWindow(title, width, height)
	return b, nil
}

func (b *Backend) loadFont(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		b.log.Debug("ui font not found, using default", zap.String("path", path))
		return
	}
	cfg := imgui.NewFontConfig()
	defer cfg.Destroy()
	if font := imgui.CurrentIO().Fonts().AddFontFromFileTTFV(path, 16, cfg, nil); font == nil {
		b.log.Warn("failed to load ui font", zap.String("path", path))
	}
}

// Run starts the main loop; frame is called once per frame between
// imgui's NewFrame and Render.
func (b *Backend) Run(frame func()) {
	b.ran = true
	b.backend.Run(frame)
}

// OnClose registers fn to run while the GL context is still current, just
// before the backend destroys it.
func (b *Backend) OnClose(fn func()) {
	b.onClose = fn
}

// Close tears down a backend whose loop never ran. After Run returns the
// window and context are already gone and Close does nothing.
func (b *Backend) Close() {
	if b.ran {
		return
	}
	b.ran = true
	b.backend.SetShouldClose(true)
	b.backend.Run(func() {})
	b.log.Debug("backend closed before first frame")
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// SetTargetFPS caps the frame rate; 0 leaves it uncapped.
func (b *Backend) SetTargetFPS(fps uint) {
	b.backend.SetTargetFPS(fps)
}

// WorkArea returns the main viewport work area.
func WorkArea() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
