package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolutionString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"Spaced", "1920 x 1080", 1920, 1080, false},
		{"Compact", "1920x1080", 1920, 1080, false},
		{"Retina suffix", "2880x1864Retina", 2880, 1864, false},
		{"Refresh rate", "1710 x 1107 @ 60.00Hz", 1710, 1107, false},
		{"Zero", "0x1080", 0, 0, true},
		{"Garbage", "no resolution here", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := parseResolutionString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestParseXdpyinfo(t *testing.T) {
	out := []byte(`name of display:    :0
screen #0:
  dimensions:    2560x1440 pixels (677x381 millimeters)
  resolution:    96x96 dots per inch
`)
	w, h, err := parseXdpyinfo(out)
	require.NoError(t, err)
	assert.Equal(t, 2560, w)
	assert.Equal(t, 1440, h)

	_, _, err = parseXdpyinfo([]byte("screen #0:\n"))
	assert.Error(t, err)
}

func TestParseXrandr(t *testing.T) {
	t.Run("Primary output", func(t *testing.T) {
		out := []byte(`Screen 0: minimum 8 x 8, current 4480 x 1440, maximum 32767 x 32767
HDMI-1 connected 1920x1080+2560+0 (normal left inverted right x axis y axis) 527mm x 296mm
DP-1 connected primary 2560x1440+0+0 (normal left inverted right x axis y axis) 597mm x 336mm
`)
		w, h, err := parseXrandr(out)
		require.NoError(t, err)
		assert.Equal(t, 2560, w)
		assert.Equal(t, 1440, h)
	})

	t.Run("Screen fallback", func(t *testing.T) {
		out := []byte("Screen 0: minimum 8 x 8, current 1366 x 768, maximum 32767 x 32767\n")
		w, h, err := parseXrandr(out)
		require.NoError(t, err)
		assert.Equal(t, 1366, w)
		assert.Equal(t, 768, h)
	})

	t.Run("Empty", func(t *testing.T) {
		_, _, err := parseXrandr(nil)
		assert.Error(t, err)
	})
}

func TestParseJSONResolution(t *testing.T) {
	t.Run("Main display wins", func(t *testing.T) {
		data := []byte(`{"SPDisplaysDataType":[{"spdisplays_ndrvs":[
			{"_spdisplays_pixels":"1920 x 1080"},
			{"_spdisplays_pixels":"3420 x 2214","spdisplays_main":"spdisplays_yes"}
		]}]}`)
		w, h, err := parseJSONResolution(data)
		require.NoError(t, err)
		assert.Equal(t, 3420, w)
		assert.Equal(t, 2214, h)
	})

	t.Run("First display fallback", func(t *testing.T) {
		data := []byte(`{"SPDisplaysDataType":[{"spdisplays_ndrvs":[
			{"spdisplays_pixelresolution":"2880x1864Retina"}
		]}]}`)
		w, h, err := parseJSONResolution(data)
		require.NoError(t, err)
		assert.Equal(t, 2880, w)
		assert.Equal(t, 1864, h)
	})

	t.Run("No displays", func(t *testing.T) {
		_, _, err := parseJSONResolution([]byte(`{"SPDisplaysDataType":[]}`))
		assert.Error(t, err)
	})

	t.Run("Bad JSON", func(t *testing.T) {
		_, _, err := parseJSONResolution([]byte(`{`))
		assert.Error(t, err)
	})
}
