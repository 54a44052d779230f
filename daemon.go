// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// runLoop refreshes the background on the configured interval until the
// context is canceled. The config file is watched so edits take effect
// without a restart; an interval change retunes the running ticker.
func (a *app) runLoop(ctx context.Context) error {
	watcher := a.watchConfig()
	if watcher != nil {
		defer watcher.Close()
	}

	cfg, _ := a.config()
	interval := cfg.Interval
	logger.Infof("refreshing every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.updateAndLog(ctx)

	for {
		var events chan fsnotify.Event
		var watchErrs chan error
		if watcher != nil {
			events = watcher.Events
			watchErrs = watcher.Errors
		}

		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			a.updateAndLog(ctx)
			// drop the tick that may have accumulated while updating
			select {
			case <-ticker.C:
			default:
			}
		case ev := <-events:
			if !matchesConfigPath(ev.Name, a.configPath) ||
				ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.reloadConfig()
			cfg, _ = a.config()
			if next, changed := retunedInterval(interval, cfg); changed {
				interval = next
				ticker.Reset(interval)
				logger.Infof("refresh interval is now %s", interval)
			}
		case err := <-watchErrs:
			logger.Warning("config watcher:", err)
		}
	}
}

// matchesConfigPath compares an event path with the config path. fsnotify
// reports names joined onto the watched directory, so a relative -config
// path and the event name can differ in spelling ("./config.ini" vs
// "config.ini"); both sides are cleaned before comparing.
func matchesConfigPath(name, configPath string) bool {
	return filepath.Clean(name) == filepath.Clean(configPath)
}

// retunedInterval returns the interval the loop should tick on after a
// config reload, and whether it changed.
func retunedInterval(current time.Duration, cfg *Config) (time.Duration, bool) {
	if cfg.Interval > 0 && cfg.Interval != current {
		return cfg.Interval, true
	}
	return current, false
}

// watchConfig sets up a watch on the config file's directory. Editors
// replace files instead of rewriting them, so the directory is watched
// and events are filtered by name. Running without a watcher is fine, the
// loop then only follows the ticker.
func (a *app) watchConfig() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warning("cannot create config watcher:", err)
		return nil
	}
	if err := watcher.Add(filepath.Dir(a.configPath)); err != nil {
		logger.Warning("cannot watch config dir:", err)
		watcher.Close()
		return nil
	}
	return watcher
}

// updateAndLog runs one update; in daemon mode a failed update is only
// logged, the loop keeps going and retries on the next tick.
func (a *app) updateAndLog(ctx context.Context) {
	if err := a.update(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Warning("update failed:", err)
	}
}
