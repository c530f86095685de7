package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.False(t, cfg.DisableHotkeys)
	assert.False(t, cfg.DisableUpdateCheck)

	_, _, ok := cfg.SurfaceOverride()
	assert.False(t, ok)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("DAYNIGHT_RENDER_DIR", "/tmp/daynight-test")
	t.Setenv("DAYNIGHT_SURFACE", "2560x1440")
	t.Setenv("DAYNIGHT_DISABLE_HOTKEYS", "true")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.True(t, cfg.DisableHotkeys)
	assert.Equal(t, "/tmp/daynight-test", GetRenderDir(cfg))

	w, h, ok := cfg.SurfaceOverride()
	assert.True(t, ok)
	assert.Equal(t, 2560, w)
	assert.Equal(t, 1440, h)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("DAYNIGHT_DISABLE_HOTKEYS", "not-a-bool")
	_, err := ParseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	t.Setenv("DAYNIGHT_DISABLE_HOTKEYS", "false")
	t.Setenv("DAYNIGHT_SURFACE", "wide")
	_, err = ParseEnv()
	assert.Error(t, err)
}

func TestParseSurface(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "1920x1080", w: 1920, h: 1080},
		{in: " 800X600 ", w: 800, h: 600},
		{in: "0x600", wantErr: true},
		{in: "800", wantErr: true},
		{in: "axb", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSurface(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestGetRenderDirDefault(t *testing.T) {
	assert.Equal(t, filepath.Join(GetPath(), RenderSubDir), GetRenderDir(EnvConfig{}))
}

func TestGetFaceModelPath(t *testing.T) {
	assert.Equal(t, filepath.Join(GetPath(), ModelSubDir, FaceModelName), GetFaceModelPath(EnvConfig{}))

	t.Setenv("DAYNIGHT_FACE_MODEL", "/opt/pigo/facefinder")
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/opt/pigo/facefinder", GetFaceModelPath(cfg))
}
