// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meteosat-tools/meteosat-background-image/wallpaper"
)

func Test_loadConfig(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     *Config
		wantErr  bool
	}{
		{
			name:     "missing file yields defaults",
			filename: "./testdata/does-not-exist.ini",
			want:     defaultConfig(),
		},
		{
			name:     "full config",
			filename: "./testdata/config-full.ini",
			want: &Config{
				BaseURL:      "http://example.org/xrit/000.0E/MSG",
				UseGrid:      false,
				MaxAttempts:  5,
				SetWallpaper: false,
				Mode:         wallpaper.ModeCentered,
				Interval:     90 * time.Minute,
			},
		},
		{
			name:     "partial config keeps defaults",
			filename: "./testdata/config-partial.ini",
			want: &Config{
				BaseURL:      defaultConfig().BaseURL,
				UseGrid:      true,
				MaxAttempts:  3,
				SetWallpaper: true,
				Mode:         wallpaper.ModeZoom,
				Interval:     30 * time.Minute,
			},
		},
		{
			name:     "bad mode",
			filename: "./testdata/config-bad-mode.ini",
			wantErr:  true,
		},
		{
			name:     "bad interval",
			filename: "./testdata/config-bad-interval.ini",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := loadConfig(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
