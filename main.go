// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/linuxdeepin/go-lib/log"

	"github.com/meteosat-tools/meteosat-background-image/wallpaper"
)

var logger = log.NewLogger(appName)

var (
	optDebug    = flag.Bool("d", false, "verbose debug logging")
	optConfig   = flag.String("config", "", "config file path (default: XDG config dir)")
	optOutput   = flag.String("output", "", "directory the images are written to (default: XDG data dir)")
	optMode     = flag.String("mode", "", "wallpaper layout mode: auto, zoom, scaled, centered or stretched")
	optNoSet    = flag.Bool("no-set", false, "download only, leave the desktop background alone")
	optInterval = flag.Duration("interval", 0, "keep running and refresh on this interval (0 runs once)")
	optDryRun   = flag.Bool("dry-run", false, "resolve the newest image and print its URL, download nothing")
)

func doSetLogLevel(level log.Priority) {
	logger.SetLogLevel(level)
}

func main() {
	flag.Parse()

	if *optDebug {
		doSetLogLevel(log.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := *optConfig
	if configPath == "" {
		configPath = getConfigPath()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// flags win over the config file
	if *optMode != "" {
		mode, err := wallpaper.ParseMode(*optMode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if *optNoSet {
		cfg.SetWallpaper = false
	}

	if *optInterval > 0 {
		cfg.Interval = *optInterval
	}

	outputDir := *optOutput
	if outputDir == "" {
		outputDir = getDataDir()
	}

	a := newApp(cfg, configPath, outputDir)

	if *optDryRun {
		snap, err := a.latestSnapshot(ctx)
		if err != nil {
			return err
		}
		fmt.Println(snap.URL)
		return nil
	}

	if *optInterval > 0 {
		return a.runLoop(ctx)
	}
	return a.update(ctx)
}
