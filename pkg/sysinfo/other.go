//go:build !linux && !darwin && !windows

package sysinfo

import (
	"fmt"
	"runtime"
)

// GetScreenDimensions is not available on this platform.
func GetScreenDimensions() (int, int, error) {
	return 0, 0, fmt.Errorf("screen dimensions unsupported on %s", runtime.GOOS)
}
