// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wallpaper

import (
	"os/exec"
	"strconv"

	"github.com/linuxdeepin/go-lib/log"
	"golang.org/x/xerrors"
)

// Set tells Finder through System Events to use file as the picture of
// every desktop. macOS manages the layout itself, mode is ignored.
func Set(file string, _ Mode, _ *log.Logger) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` +
		strconv.Quote(file)
	outs, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return xerrors.Errorf("osascript: %s: %w", string(outs), err)
	}
	return nil
}
