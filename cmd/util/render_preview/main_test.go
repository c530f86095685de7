package main

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	require.NoError(t, imaging.Save(imaging.New(40, 20, color.White), src))

	for _, mode := range []string{"Center", "Fill", "Smart"} {
		t.Run(mode, func(t *testing.T) {
			out := filepath.Join(dir, mode+".png")
			require.NoError(t, run(src, out, "64x48", mode, ""))
			img, err := imaging.Open(out)
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())
			assert.Equal(t, 48, img.Bounds().Dy())
		})
	}

	t.Run("Placeholder", func(t *testing.T) {
		out := filepath.Join(dir, "empty.png")
		require.NoError(t, run("", out, "32x16", "Center", ""))
		assert.FileExists(t, out)
	})

	t.Run("Bad input", func(t *testing.T) {
		assert.Error(t, run(src, filepath.Join(dir, "x.png"), "64", "Center", ""))
		assert.Error(t, run(src, filepath.Join(dir, "x.png"), "64x48", "Stretch", ""))
		assert.Error(t, run(src, filepath.Join(dir, "x.png"), "64x48", "Smart", filepath.Join(dir, "missing-cascade")))
	})
}
