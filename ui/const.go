package ui

import "time"

// aboutSplashTime is how long the about screen is shown
const aboutSplashTime = 4 * time.Second

// updateMenuItemPrefix is the copy for the new update available tray menu item
const updateMenuItemPrefix = "Update to "

// updateCheckTimeout bounds the GitHub release lookup
const updateCheckTimeout = 15 * time.Second

// Preview thumbnails are composed at this size.
const (
	previewWidth  = 320
	previewHeight = 180
)

// imageExtensions are the file types offered by the image choosers.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}
