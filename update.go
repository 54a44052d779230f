// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/meteosat-tools/meteosat-background-image/archive"
	"github.com/meteosat-tools/meteosat-background-image/wallpaper"
)

type app struct {
	configPath string
	outputDir  string

	mu     sync.Mutex
	cfg    *Config
	client *archive.Client
}

func newApp(cfg *Config, configPath, outputDir string) *app {
	a := &app{
		configPath: configPath,
		outputDir:  outputDir,
	}
	a.applyConfig(cfg)
	return a
}

func (a *app) applyConfig(cfg *Config) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cfg = cfg
	a.client = archive.NewClient(cfg.BaseURL, cfg.UseGrid, cfg.MaxAttempts, logger)
	logger.Debug("config:", spew.Sdump(cfg))
}

func (a *app) config() (*Config, *archive.Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg, a.client
}

// reloadConfig swaps in the config file's current content. A broken file
// is logged and ignored, the last good config stays active.
func (a *app) reloadConfig() {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		logger.Warning("config reload failed:", err)
		return
	}
	logger.Info("config reloaded")
	a.applyConfig(cfg)
}

func (a *app) latestSnapshot(ctx context.Context) (*archive.Snapshot, error) {
	_, client := a.config()
	return client.LatestSnapshot(ctx, time.Now())
}

// update performs one full cycle: find the newest image, download it and
// hand it to the wallpaper setter.
func (a *app) update(ctx context.Context) error {
	cfg, client := a.config()

	snap, err := client.LatestSnapshot(ctx, time.Now())
	if err != nil {
		return err
	}
	logger.Infof("newest image: %s", snap.URL)

	file, err := client.Download(ctx, snap, a.outputDir)
	if err != nil {
		return err
	}
	logger.Infof("saved %s", file)

	if !cfg.SetWallpaper {
		return nil
	}
	if err := wallpaper.Set(file, cfg.Mode, logger); err != nil {
		return err
	}
	logger.Info("desktop background updated")
	return nil
}
