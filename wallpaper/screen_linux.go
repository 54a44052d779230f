// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wallpaper

import (
	"image"
	_ "image/jpeg"
	"os"

	"github.com/linuxdeepin/go-lib/log"
	x "github.com/linuxdeepin/go-x11-client"
)

// resolveAutoMode turns ModeAuto into a concrete layout mode. A full-disk
// Meteosat image is nearly square; on a wide screen zooming would crop the
// Earth disk, so the image is scaled to fit unless the aspect ratios are
// close. When the X server or the image cannot be read, scaled is the safe
// answer.
func resolveAutoMode(file string, logger *log.Logger) Mode {
	screenW, screenH, err := getScreenSize()
	if err != nil {
		logger.Debug("cannot query screen size:", err)
		return ModeScaled
	}

	imgW, imgH, err := imageSize(file)
	if err != nil {
		logger.Debug("cannot read image size:", err)
		return ModeScaled
	}

	mode := chooseMode(screenW, screenH, imgW, imgH)
	logger.Debugf("auto mode: screen %dx%d, image %dx%d -> %s",
		screenW, screenH, imgW, imgH, mode)
	return mode
}

func getScreenSize() (width, height int, err error) {
	conn, err := x.NewConn()
	if err != nil {
		return 0, 0, err
	}
	defer conn.Close()

	screen := conn.GetDefaultScreen()
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

func imageSize(file string) (width, height int, err error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// chooseMode zooms only when the screen and image aspect ratios are within
// 10% of each other.
func chooseMode(screenW, screenH, imgW, imgH int) Mode {
	if screenH <= 0 || imgH <= 0 {
		return ModeScaled
	}
	screenRatio := float64(screenW) / float64(screenH)
	imgRatio := float64(imgW) / float64(imgH)

	diff := screenRatio/imgRatio - 1
	if diff < 0 {
		diff = -diff
	}
	if diff <= 0.1 {
		return ModeZoom
	}
	return ModeScaled
}
