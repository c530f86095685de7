package wallpaper

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

// createTestImage returns a w x h image filled with c.
func createTestImage(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// writeTestImage saves img as name in dir and returns a file reference to it.
func writeTestImage(t *testing.T, dir, name string, img image.Image) selection.ImageRef {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path))
	return selection.FromPath(path)
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 > 200 && g>>8 < 60 && b>>8 < 60
}

func isGreen(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return g>>8 > 200 && r>>8 < 60 && b>>8 < 60
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r>>8 < 20 && g>>8 < 20 && b>>8 < 20
}
