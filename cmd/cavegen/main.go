// Package main is the entry point for the cave mesh generator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cavemesh/internal/cave"
	"github.com/Faultbox/cavemesh/internal/config"
	"github.com/Faultbox/cavemesh/internal/export"
	"github.com/Faultbox/cavemesh/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if fill := cfg.Map.FillPercent; fill < 0 || fill > 100 {
		logger.Warn("fill percent outside 0-100, random fill is all open or all wall",
			zap.Int("fill_percent", fill))
	}

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("saving config failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	res, err := cave.Generate(cfg)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	files, err := export.Save(cfg.Output.Dir, cfg.Output.Name, cfg, res)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("cave written",
		zap.String("seed", res.Seed),
		zap.String("obj", files.OBJ),
		zap.String("map", files.Map),
		zap.String("manifest", files.Manifest))
}
