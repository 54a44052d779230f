// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"
	appearance "github.com/linuxdeepin/go-dbus-factory/com.deepin.daemon.appearance"
	"github.com/linuxdeepin/go-lib/log"
	"github.com/linuxdeepin/go-lib/utils"
	"golang.org/x/xerrors"
)

// Set makes file the desktop background of the current session. The
// desktop environment is taken from XDG_CURRENT_DESKTOP; sessions that
// advertise no known desktop fall back to feh on the X root window.
func Set(file string, mode Mode, logger *log.Logger) error {
	if mode == ModeAuto {
		mode = resolveAutoMode(file, logger)
	}

	desktop := desktopFromEnv(os.Getenv("XDG_CURRENT_DESKTOP"))
	switch desktop {
	case desktopDeepin:
		return setDeepin(file)
	case desktopKDE:
		return setKDE(file, mode)
	case desktopGNOME, desktopCinnamon, desktopMATE:
		return setGSettings(desktop, file, mode)
	case desktopXFCE:
		return setXFCE(file)
	}

	if os.Getenv("DISPLAY") == "" {
		return errors.New("unknown desktop environment and no X display")
	}
	logger.Debug("unknown desktop environment, falling back to feh")
	return setFeh(file, mode)
}

func setDeepin(file string) error {
	sessionBus, err := dbus.SessionBus()
	if err != nil {
		return err
	}
	uri := utils.EncodeURI(file, utils.SCHEME_FILE)
	err = appearance.NewAppearance(sessionBus).Set(0, "background", uri)
	if err != nil {
		return xerrors.Errorf("set deepin background: %w", err)
	}
	return nil
}

func setKDE(file string, mode Mode) error {
	sessionBus, err := dbus.SessionBus()
	if err != nil {
		return err
	}
	obj := sessionBus.Object("org.kde.plasmashell", "/PlasmaShell")
	err = obj.Call("org.kde.PlasmaShell.evaluateScript", 0,
		plasmaScript(file, mode)).Err
	if err != nil {
		return xerrors.Errorf("set plasma background: %w", err)
	}
	return nil
}

// plasmaScript builds the desktop-scripting snippet applied to every
// plasma containment.
func plasmaScript(file string, mode Mode) string {
	var fillMode int
	switch mode {
	case ModeStretched:
		fillMode = 0 // Image.Stretch
	case ModeScaled:
		fillMode = 1 // Image.PreserveAspectFit
	case ModeCentered:
		fillMode = 6 // Image.Pad
	default:
		fillMode = 2 // Image.PreserveAspectCrop
	}
	return fmt.Sprintf(`var all = desktops();
for (var i = 0; i < all.length; i++) {
    var d = all[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = ["Wallpaper", "org.kde.image", "General"];
    d.writeConfig("Image", %q);
    d.writeConfig("FillMode", %d);
}`, "file://"+file, fillMode)
}

// gsettingsArgs returns the gsettings invocations for one desktop family.
// GNOME and Cinnamon take a file:// URI, MATE a plain path.
func gsettingsArgs(desktop desktopType, file string, mode Mode) [][]string {
	uri := "file://" + file
	switch desktop {
	case desktopCinnamon:
		return [][]string{
			{"set", "org.cinnamon.desktop.background", "picture-uri", uri},
			{"set", "org.cinnamon.desktop.background", "picture-options", string(mode)},
		}
	case desktopMATE:
		return [][]string{
			{"set", "org.mate.background", "picture-filename", file},
			{"set", "org.mate.background", "picture-options", string(mode)},
		}
	default:
		return [][]string{
			{"set", "org.gnome.desktop.background", "picture-uri", uri},
			{"set", "org.gnome.desktop.background", "picture-uri-dark", uri},
			{"set", "org.gnome.desktop.background", "picture-options", string(mode)},
		}
	}
}

func setGSettings(desktop desktopType, file string, mode Mode) error {
	for _, args := range gsettingsArgs(desktop, file, mode) {
		outs, err := exec.Command("gsettings", args...).CombinedOutput()
		if err != nil {
			return xerrors.Errorf("gsettings %s: %s: %w",
				strings.Join(args, " "), string(outs), err)
		}
	}
	return nil
}

func setXFCE(file string) error {
	outs, err := exec.Command("xfconf-query", "-c", "xfce4-desktop", "-l").CombinedOutput()
	if err != nil {
		return xerrors.Errorf("list xfce4-desktop properties: %s: %w", string(outs), err)
	}

	var found bool
	for _, prop := range strings.Fields(string(outs)) {
		if !strings.HasSuffix(prop, "/last-image") {
			continue
		}
		found = true
		setOuts, err := exec.Command("xfconf-query", "-c", "xfce4-desktop",
			"-p", prop, "-s", file).CombinedOutput()
		if err != nil {
			return xerrors.Errorf("set %s: %s: %w", prop, string(setOuts), err)
		}
	}
	if !found {
		return errors.New("no xfce4-desktop backdrop property found")
	}
	return nil
}

func setFeh(file string, mode Mode) error {
	var flag string
	switch mode {
	case ModeScaled:
		flag = "--bg-max"
	case ModeCentered:
		flag = "--bg-center"
	case ModeStretched:
		flag = "--bg-scale"
	default:
		flag = "--bg-fill"
	}
	outs, err := exec.Command("feh", flag, file).CombinedOutput()
	if err != nil {
		return xerrors.Errorf("feh %s: %s: %w", flag, string(outs), err)
	}
	return nil
}
