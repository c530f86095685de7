//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

const (
	supported  = false
	chordLabel = ""

	keyD = hotkey.Key(0)
	keyN = hotkey.Key(0)
	keyR = hotkey.Key(0)
)

var chordMods []hotkey.Modifier

func HasAccessibility() bool {
	return true
}
