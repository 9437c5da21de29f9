// Package app wires configuration, assets, audio and a scene build into
// the state both hosts share.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orrery"
)

// Session owns the long-lived collaborators of one run.
type Session struct {
	Config  *config.Config
	Variant orrery.Variant
	Loader  *assets.Loader
	// Music is nil unless the variant plays music.
	Music *audio.Manager

	system *orrery.SystemSpec
	log    *zap.Logger
}

// NewSession resolves the configured variant and scene file and starts
// the asset loader.
func NewSession(cfg *config.Config) (*Session, error) {
	log := logger.Named("app")

	v, err := orrery.VariantByName(cfg.Scene.Variant)
	if err != nil {
		return nil, err
	}

	var system *orrery.SystemSpec
	if cfg.Scene.File != "" {
		if v.Shapes {
			log.Warn("scene file ignored by the shapes variant", zap.String("file", cfg.Scene.File))
		} else if system, err = orrery.LoadSystemSpec(cfg.Scene.File); err != nil {
			return nil, fmt.Errorf("scene file: %w", err)
		}
	}

	if info, err := os.Stat(cfg.Data.AssetDir); err != nil || !info.IsDir() {
		// Textures, font and music then fail to load and are skipped.
		log.Warn("asset directory not found", zap.String("dir", cfg.Data.AssetDir))
	}
	manager := assets.NewManager(os.DirFS(cfg.Data.AssetDir))

	s := &Session{
		Config:  cfg,
		Variant: v,
		Loader:  assets.NewLoader(manager, cfg.Data.LoadWorkers),
		system:  system,
		log:     log,
	}
	if v.Music {
		s.Music = audio.New(float64(cfg.Audio.MusicVolume), cfg.Audio.Muted)
	}
	return s, nil
}

// StartMusic opens the speaker and loads the soundtrack in the background.
// Audio problems are logged and otherwise ignored.
func (s *Session) StartMusic() {
	if s.Music == nil {
		return
	}
	if err := s.Music.Init(); err != nil {
		s.log.Warn("audio disabled", zap.Error(err))
		return
	}
	track := s.Config.Audio.Track
	s.Loader.LoadBytes(track).
		Then(func(data []byte) {
			if err := s.Music.PlayMusic(track, data); err != nil {
				s.log.Warn("music not played", zap.Error(err))
			}
		}).
		Catch(func(err error) {
			s.log.Debug("soundtrack not loaded", zap.String("track", track), zap.Error(err))
		})
}

// Build constructs the scene for the session's variant.
func (s *Session) Build(r orrery.Renderer, target orrery.RenderTarget, width, height int) (*orrery.SceneContext, error) {
	cfg := s.Config
	opts := orrery.Options{
		Loader:        s.Loader,
		Renderer:      r,
		Target:        target,
		Width:         width,
		Height:        height,
		FOV:           cfg.Graphics.FOV,
		OrbitSegments: cfg.Scene.OrbitSegments,
		System:        s.system,
		FontPath:      cfg.Data.Font,
	}
	if s.Music != nil {
		opts.Music = s.Music
	}

	sc, err := orrery.Build(s.Variant, opts)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.String("variant", s.Variant.Name),
		zap.Strings("cameras", sc.Rig.Names()),
		zap.Int("spinning", sc.Driver.Tracked()),
	}
	if sc.System != nil {
		fields = append(fields, zap.Int("bodies", len(sc.System.Bodies)))
	}
	s.log.Info("scene built", fields...)
	return sc, nil
}

// FontPath returns the font's path on disk, for consumers that cannot
// read through the loader.
func (s *Session) FontPath() string {
	return filepath.Join(s.Config.Data.AssetDir, s.Config.Data.Font)
}

// Close stops the loader and the music.
func (s *Session) Close() {
	s.Loader.Close()
	if s.Music != nil {
		s.Music.Close()
	}
}
