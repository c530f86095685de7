//go:build windows

package hotkey

import "golang.design/x/hotkey"

const (
	supported  = true
	chordLabel = "Ctrl+Alt+"

	keyD = hotkey.KeyD
	keyN = hotkey.KeyN
	keyR = hotkey.KeyR
)

var chordMods = []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModAlt}

func HasAccessibility() bool {
	return true
}
