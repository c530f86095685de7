//go:build !linux && !darwin && !windows

package wallpaper

import (
	"fmt"
	"runtime"

	"github.com/dixieflatline76/DayNight/pkg/sysinfo"
)

type unsupportedOS struct{}

func getOS() OS {
	return unsupportedOS{}
}

func (unsupportedOS) setWallpaper(string) error {
	return fmt.Errorf("setting the wallpaper is unsupported on %s", runtime.GOOS)
}

func (unsupportedOS) getDesktopDimension() (int, int, error) {
	return sysinfo.GetScreenDimensions()
}
