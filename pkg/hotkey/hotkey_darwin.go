//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

int checkAccessibilityNative() {
    return AXIsProcessTrusted() ? 1 : 0;
}
*/
import "C"

import "golang.design/x/hotkey"

const (
	supported  = true
	chordLabel = "⌘⌥"

	keyD = hotkey.KeyD
	keyN = hotkey.KeyN
	keyR = hotkey.KeyR
)

var chordMods = []hotkey.Modifier{hotkey.ModCmd, hotkey.ModOption}

// HasAccessibility reports whether the process is trusted for accessibility,
// which macOS requires before global hotkeys are delivered.
func HasAccessibility() bool {
	return C.checkAccessibilityNative() != 0
}
