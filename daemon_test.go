// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runLoop_updatesThenStopsOnCancel(t *testing.T) {
	srv := newArchiveServer(t)
	dir := t.TempDir()

	cfg := testAppConfig(srv.URL)
	cfg.Interval = 50 * time.Millisecond
	a := newApp(cfg, filepath.Join(t.TempDir(), "config.ini"), dir)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := a.runLoop(ctx)
	require.NoError(t, err)

	// the first update runs on entry, not on the first tick
	data, err := os.ReadFile(filepath.Join(dir, "current.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, testImage, data)
}

func Test_retunedInterval(t *testing.T) {
	tests := []struct {
		name        string
		current     time.Duration
		cfgInterval time.Duration
		want        time.Duration
		wantChanged bool
	}{
		{
			name:        "interval changed",
			current:     30 * time.Minute,
			cfgInterval: time.Hour,
			want:        time.Hour,
			wantChanged: true,
		},
		{
			name:        "interval unchanged",
			current:     30 * time.Minute,
			cfgInterval: 30 * time.Minute,
			want:        30 * time.Minute,
		},
		{
			name:        "zero interval keeps the running one",
			current:     30 * time.Minute,
			cfgInterval: 0,
			want:        30 * time.Minute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Interval = tt.cfgInterval

			got, changed := retunedInterval(tt.current, cfg)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func Test_matchesConfigPath(t *testing.T) {
	tests := []struct {
		name       string
		evName     string
		configPath string
		want       bool
	}{
		{
			name:       "identical absolute paths",
			evName:     "/home/u/.config/meteosat-background-image/config.ini",
			configPath: "/home/u/.config/meteosat-background-image/config.ini",
			want:       true,
		},
		{
			// fsnotify joins event names onto the watched dir, so a
			// relative -config ./config.ini arrives without the ./
			name:       "relative config path",
			evName:     "config.ini",
			configPath: "./config.ini",
			want:       true,
		},
		{
			name:       "other file in the config dir",
			evName:     "config.ini.swp",
			configPath: "./config.ini",
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesConfigPath(tt.evName, tt.configPath))
		})
	}
}
