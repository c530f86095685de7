// Package sysinfo reports the primary display size for the current platform.
package sysinfo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// resolutionRegex matches strings like "3456 x 2234", "2880x1864Retina" or "1710 x 1107 @ 60.00Hz".
var resolutionRegex = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)

// parseXdpyinfo extracts the screen size from a line like
// "  dimensions:    1920x1080 pixels (508x285 millimeters)".
func parseXdpyinfo(out []byte) (int, int, error) {
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "dimensions:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		return parseResolutionString(fields[1])
	}
	return 0, 0, fmt.Errorf("no dimensions line in xdpyinfo output")
}

// parseXrandr extracts the size of the first connected primary output, falling
// back to the "current W x H" value of the screen line.
func parseXrandr(out []byte) (int, int, error) {
	var current string
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, " connected primary ") {
			fields := strings.Fields(line)
			if len(fields) > 3 {
				if w, h, err := parseResolutionString(fields[3]); err == nil {
					return w, h, nil
				}
			}
		}
		if current == "" {
			if i := strings.Index(line, "current "); i >= 0 {
				current = line[i+len("current "):]
				if j := strings.Index(current, ","); j >= 0 {
					current = current[:j]
				}
			}
		}
	}
	if current == "" {
		return 0, 0, fmt.Errorf("no screen line in xrandr output")
	}
	return parseResolutionString(current)
}

// systemProfilerOutput represents the nested structure of system_profiler -json
type systemProfilerOutput struct {
	Displays []gpuInfo `json:"SPDisplaysDataType"`
}

type gpuInfo struct {
	NDRVs []displayInfo `json:"spdisplays_ndrvs"`
}

type displayInfo struct {
	PixelResolution string `json:"spdisplays_pixelresolution"` // Physical pixels (e.g. "2880x1864Retina")
	Resolution      string `json:"_spdisplays_pixels"`         // Actual resolution (e.g. "3420 x 2214")
	Main            string `json:"spdisplays_main"`            // "spdisplays_yes"
}

func parseJSONResolution(data []byte) (int, int, error) {
	var profiler systemProfilerOutput
	if err := json.Unmarshal(data, &profiler); err != nil {
		return 0, 0, fmt.Errorf("decoding system_profiler JSON: %w", err)
	}

	for _, gpu := range profiler.Displays {
		for _, display := range gpu.NDRVs {
			if display.Main == "spdisplays_yes" {
				return parseDisplay(display)
			}
		}
	}

	if len(profiler.Displays) > 0 && len(profiler.Displays[0].NDRVs) > 0 {
		return parseDisplay(profiler.Displays[0].NDRVs[0])
	}

	return 0, 0, fmt.Errorf("no displays found in system_profiler output")
}

func parseDisplay(d displayInfo) (int, int, error) {
	if d.Resolution != "" {
		return parseResolutionString(d.Resolution)
	}
	return parseResolutionString(d.PixelResolution)
}

func parseResolutionString(s string) (int, int, error) {
	matches := resolutionRegex.FindStringSubmatch(s)
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse resolution from string: %q", s)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution %dx%d", width, height)
	}

	return width, height, nil
}
