package ui

// OS covers the platform specific window behavior of the tray app.
type OS interface {
	TransformToForeground()
	TransformToBackground()
}
