// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "auto", want: ModeAuto},
		{in: "zoom", want: ModeZoom},
		{in: "scaled", want: ModeScaled},
		{in: "centered", want: ModeCentered},
		{in: "stretched", want: ModeStretched},
		{in: "", wantErr: true},
		{in: "tiled", wantErr: true},
		{in: "Zoom", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_desktopFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want desktopType
	}{
		{env: "Deepin", want: desktopDeepin},
		{env: "DDE", want: desktopDeepin},
		{env: "GNOME", want: desktopGNOME},
		{env: "ubuntu:GNOME", want: desktopGNOME},
		{env: "Unity", want: desktopGNOME},
		{env: "X-Cinnamon", want: desktopCinnamon},
		{env: "MATE", want: desktopMATE},
		{env: "KDE", want: desktopKDE},
		{env: "XFCE", want: desktopXFCE},
		{env: "", want: desktopUnknown},
		{env: "sway", want: desktopUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, desktopFromEnv(tt.env))
		})
	}
}
