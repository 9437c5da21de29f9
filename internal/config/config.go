// Package config handles orrery configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all program settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Scene    SceneConfig    `yaml:"scene"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	ShowFPS    bool    `yaml:"show_fps"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	MusicVolume float32 `yaml:"music_volume"`
	Muted       bool    `yaml:"muted"`
	Track       string  `yaml:"track"` // relative to data.asset_dir
}

// SceneConfig selects what gets built.
type SceneConfig struct {
	Variant string `yaml:"variant"`
	// File is an optional YAML body list replacing the built-in system.
	File          string `yaml:"file"`
	OrbitSegments int    `yaml:"orbit_segments"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDir    string `yaml:"asset_dir"`
	LoadWorkers int    `yaml:"load_workers"`
	Font        string `yaml:"font"` // relative to asset_dir

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    75,
		},
		Audio: AudioConfig{
			MusicVolume: 0.6,
			Track:       "audio/soundtrack.wav",
		},
		Scene: SceneConfig{
			Variant:       "solar-full",
			OrbitSegments: 128,
		},
		Data: DataConfig{
			AssetDir:    "assets",
			LoadWorkers: 4,
			Font:        "fonts/regular.ttf",

			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that would make startup fail later.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %v out of range (0, 180)", c.Graphics.FOV))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio: music_volume %v out of range [0, 1]", c.Audio.MusicVolume))
	}
	if c.Scene.OrbitSegments < 3 {
		errs = append(errs, fmt.Errorf("scene: orbit_segments must be at least 3, got %d", c.Scene.OrbitSegments))
	}
	if c.Data.LoadWorkers < 1 {
		errs = append(errs, fmt.Errorf("data: load_workers must be positive, got %d", c.Data.LoadWorkers))
	}
	return errors.Join(errs...)
}
