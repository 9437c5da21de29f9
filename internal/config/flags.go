package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagVariant    = flag.String("variant", "", "Scene variant (shapes, solar-basic, solar-textured, solar-atmosphere, solar-full)")
	flagScene      = flag.String("scene", "", "Path to a YAML scene file")
	flagAssets     = flag.String("assets", "", "Asset directory")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMute       = flag.Bool("mute", false, "Disable background music")
	flagWrite      = flag.String("write-config", "", "Write the effective config to this path (\"-\" for stdout) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// WritePath returns the -write-config destination, or "".
func WritePath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagVariant != "" {
		cfg.Scene.Variant = *flagVariant
	}
	if *flagScene != "" {
		cfg.Scene.File = *flagScene
	}
	if *flagAssets != "" {
		cfg.Data.AssetDir = *flagAssets
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
}
