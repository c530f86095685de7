//go:build darwin

package wallpaper

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/dixieflatline76/DayNight/pkg/sysinfo"
)

// macOSOS implements the OS interface for macOS.
type macOSOS struct{}

// getOS returns a new instance of the macOSOS struct.
func getOS() OS {
	return &macOSOS{}
}

// setWallpaper sets the desktop picture of every desktop through System Events.
func (m *macOSOS) setWallpaper(imagePath string) error {
	script := fmt.Sprintf(`tell application "System Events"
	tell every desktop
		set picture to %q
	end tell
end tell`, imagePath)

	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// getDesktopDimension returns the desktop dimensions on macOS.
func (m *macOSOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}
