// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/linuxdeepin/go-lib/keyfile"
	"github.com/linuxdeepin/go-lib/xdg/basedir"
	"golang.org/x/xerrors"

	"github.com/meteosat-tools/meteosat-background-image/archive"
	"github.com/meteosat-tools/meteosat-background-image/wallpaper"
)

const appName = "meteosat-background-image"

const (
	cfgGroupArchive   = "archive"
	cfgKeyBaseURL     = "base_url"
	cfgKeyUseGrid     = "use_grid"
	cfgKeyMaxAttempts = "max_attempts"

	cfgGroupWallpaper = "wallpaper"
	cfgKeySet         = "set"
	cfgKeyMode        = "mode"

	cfgGroupDaemon = "daemon"
	cfgKeyInterval = "interval"
)

type Config struct {
	BaseURL      string
	UseGrid      bool
	MaxAttempts  int
	SetWallpaper bool
	Mode         wallpaper.Mode
	Interval     time.Duration
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:      archive.DefaultBaseURL,
		UseGrid:      true,
		MaxAttempts:  archive.DefaultMaxAttempts,
		SetWallpaper: true,
		Mode:         wallpaper.ModeAuto,
		Interval:     30 * time.Minute,
	}
}

func getConfigPath() string {
	return filepath.Join(basedir.GetUserConfigDir(), appName, "config.ini")
}

func getDataDir() string {
	return filepath.Join(basedir.GetUserDataDir(), appName)
}

// loadConfig reads the key file at filename on top of the defaults. A
// missing file is not an error, every key is optional.
func loadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	kf := keyfile.NewKeyFile()
	if err := kf.LoadFromFile(filename); err != nil {
		return nil, xerrors.Errorf("load config %s: %w", filename, err)
	}

	if v, err := kf.GetString(cfgGroupArchive, cfgKeyBaseURL); err == nil {
		cfg.BaseURL = v
	}
	if v, err := kf.GetString(cfgGroupArchive, cfgKeyUseGrid); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, xerrors.Errorf("config %s.%s: %w",
				cfgGroupArchive, cfgKeyUseGrid, err)
		}
		cfg.UseGrid = b
	}
	if v, err := kf.GetString(cfgGroupArchive, cfgKeyMaxAttempts); err == nil {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, xerrors.Errorf("config %s.%s: invalid attempt count %q",
				cfgGroupArchive, cfgKeyMaxAttempts, v)
		}
		cfg.MaxAttempts = n
	}

	if v, err := kf.GetString(cfgGroupWallpaper, cfgKeySet); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, xerrors.Errorf("config %s.%s: %w",
				cfgGroupWallpaper, cfgKeySet, err)
		}
		cfg.SetWallpaper = b
	}
	if v, err := kf.GetString(cfgGroupWallpaper, cfgKeyMode); err == nil {
		mode, err := wallpaper.ParseMode(v)
		if err != nil {
			return nil, xerrors.Errorf("config %s.%s: %w",
				cfgGroupWallpaper, cfgKeyMode, err)
		}
		cfg.Mode = mode
	}

	if v, err := kf.GetString(cfgGroupDaemon, cfgKeyInterval); err == nil {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, xerrors.Errorf("config %s.%s: invalid interval %q",
				cfgGroupDaemon, cfgKeyInterval, v)
		}
		cfg.Interval = d
	}

	return cfg, nil
}
