//go:build !darwin

package ui

// trayOS is used where tray apps need no activation policy changes.
type trayOS struct{}

func (trayOS) TransformToForeground() {}

func (trayOS) TransformToBackground() {}

func getOS() OS {
	return trayOS{}
}
