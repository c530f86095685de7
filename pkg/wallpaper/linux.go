//go:build linux

package wallpaper

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/DayNight/pkg/sysinfo"
	"github.com/dixieflatline76/DayNight/util/log"
)

// linuxOS implements the OS interface for Linux.
type linuxOS struct {
	swaybg *exec.Cmd
}

// getOS returns a new instance of the linuxOS struct.
func getOS() OS {
	return &linuxOS{}
}

// desktopEnv returns the lowercased desktop identifier of the session.
func desktopEnv() string {
	env := os.Getenv("XDG_CURRENT_DESKTOP")
	if env == "" {
		env = os.Getenv("DESKTOP_SESSION")
	}
	return strings.ToLower(env)
}

// setWallpaper sets the desktop wallpaper on Linux, supporting X11 and some Wayland compositors.
func (l *linuxOS) setWallpaper(imagePath string) error {
	env := desktopEnv()
	wayland := os.Getenv("WAYLAND_DISPLAY") != ""

	switch {
	case strings.Contains(env, "gnome"), strings.Contains(env, "unity"),
		strings.Contains(env, "cinnamon"), strings.Contains(env, "mutter"):
		return l.setWallpaperGNOME(imagePath)
	case strings.Contains(env, "kde"):
		return l.setWallpaperKDE(imagePath)
	case strings.Contains(env, "xfce") && !wayland:
		return l.setWallpaperXFCE(imagePath)
	case strings.Contains(env, "sway") && wayland:
		return l.setWallpaperSway(imagePath)
	default:
		return fmt.Errorf("unsupported desktop environment %q (wayland=%t)", env, wayland)
	}
}

// getDesktopDimension returns the desktop dimensions on Linux.
func (l *linuxOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}

func fileURI(imagePath string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(imagePath)}).String()
}

// setWallpaperGNOME sets the wallpaper for GNOME-based desktop environments.
// The dark variant is set too so the image shows regardless of the color scheme.
func (l *linuxOS) setWallpaperGNOME(imagePath string) error {
	uri := fileURI(imagePath)
	if out, err := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri).CombinedOutput(); err != nil {
		return fmt.Errorf("gsettings picture-uri: %w: %s", err, strings.TrimSpace(string(out)))
	}
	if err := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run(); err != nil {
		log.Debugf("gsettings picture-uri-dark not applied: %v", err)
	}
	return nil
}

// setWallpaperKDE sets the wallpaper on every Plasma desktop.
func (l *linuxOS) setWallpaperKDE(imagePath string) error {
	script := fmt.Sprintf(`var allDesktops = desktops();
for (var i = 0; i < allDesktops.length; i++) {
    var d = allDesktops[i];
    d.wallpaperPlugin = "org.kde.image";
    d.currentConfigGroup = Array("Wallpaper", "org.kde.image", "General");
    d.writeConfig("Image", %q);
}`, fileURI(imagePath))

	cmd := exec.Command("dbus-send", "--session", "--type=method_call",
		"--dest=org.kde.plasmashell", "/PlasmaShell",
		"org.kde.PlasmaShell.evaluateScript", "string:"+script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("plasmashell evaluateScript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// setWallpaperXFCE sets the wallpaper for XFCE.
func (l *linuxOS) setWallpaperXFCE(imagePath string) error {
	if _, err := l.getXFCEDesktopConfigFile(); err != nil {
		return err
	}

	cmd := exec.Command("xfconf-query",
		"--channel", "xfce4-desktop",
		"--property", "/backdrop/screen0/monitor0/workspace0/last-image",
		"--set", imagePath)
	return cmd.Run()
}

// getXFCEDesktopConfigFile retrieves the path to the XFCE desktop configuration file.
func (l *linuxOS) getXFCEDesktopConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	configFile := filepath.Join(home, ".config", "xfce4", "xfconf", "xfce-perchannel-xml", "xfce4-desktop.xml")
	if _, err := os.Stat(configFile); err != nil {
		return "", fmt.Errorf("could not find XFCE desktop configuration file: %w", err)
	}
	return configFile, nil
}

// setWallpaperSway starts a new swaybg and stops the one started before it.
func (l *linuxOS) setWallpaperSway(imagePath string) error {
	cmd := exec.Command("swaybg", "--image", imagePath, "--mode", "center")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting swaybg: %w", err)
	}
	go func() { _ = cmd.Wait() }()

	if prev := l.swaybg; prev != nil && prev.Process != nil {
		_ = prev.Process.Kill()
	}
	l.swaybg = cmd
	return nil
}
