package wallpaper

// OS abstracts the platform calls the engine needs.
type OS interface {
	getDesktopDimension() (int, int, error)
	setWallpaper(path string) error
}
