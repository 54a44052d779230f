// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package wallpaper sets an image file as the desktop background of the
// running session.
package wallpaper

import (
	"fmt"
	"strings"
)

// Mode controls how the image is laid out on the screen.
type Mode string

const (
	// ModeAuto picks zoom or scaled from the screen and image geometry.
	ModeAuto Mode = "auto"
	// ModeZoom fills the screen, cropping the image as needed.
	ModeZoom Mode = "zoom"
	// ModeScaled fits the whole image on screen, keeping its aspect ratio.
	ModeScaled Mode = "scaled"
	ModeCentered  Mode = "centered"
	ModeStretched Mode = "stretched"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAuto, ModeZoom, ModeScaled, ModeCentered, ModeStretched:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown wallpaper mode %q", s)
}

type desktopType int

const (
	desktopUnknown desktopType = iota
	desktopDeepin
	desktopGNOME
	desktopCinnamon
	desktopMATE
	desktopKDE
	desktopXFCE
)

// desktopFromEnv classifies the value of XDG_CURRENT_DESKTOP, a
// colon-separated, case-insensitive list such as "ubuntu:GNOME".
func desktopFromEnv(xdgCurrentDesktop string) desktopType {
	for _, part := range strings.Split(xdgCurrentDesktop, ":") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "deepin", "dde":
			return desktopDeepin
		case "gnome", "unity", "budgie", "budgie-desktop", "pantheon":
			return desktopGNOME
		case "x-cinnamon", "cinnamon":
			return desktopCinnamon
		case "mate":
			return desktopMATE
		case "kde":
			return desktopKDE
		case "xfce":
			return desktopXFCE
		}
	}
	return desktopUnknown
}
