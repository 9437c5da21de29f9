// Command orrery shows an orrery scene with its control panel.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/app"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WritePath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Orrery ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	session, err := app.NewSession(cfg)
	if err != nil {
		logger.Error("failed to start session", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer session.Close()

	a, err := NewApp(session)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		session.Close()
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
	logger.Info("closed normally")
}
