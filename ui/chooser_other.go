//go:build !windows

package ui

import (
	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/DayNight/pkg/selection"
)

func newChooser(a fyne.App) selection.Chooser {
	return &dialogChooser{app: a}
}
