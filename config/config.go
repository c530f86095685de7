package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// No home directory, fall back to the temp dir.
		return filepath.Join(os.TempDir(), "."+strings.ToLower(AppName))
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// GetRenderDir returns the directory rendered wallpapers are written to, honoring env overrides.
func GetRenderDir(env EnvConfig) string {
	if env.RenderDir != "" {
		return env.RenderDir
	}
	return filepath.Join(GetPath(), RenderSubDir)
}

// GetFaceModelPath returns the location of the face detection cascade, honoring env overrides.
func GetFaceModelPath(env EnvConfig) string {
	if env.FaceModel != "" {
		return env.FaceModel
	}
	return filepath.Join(GetPath(), ModelSubDir, FaceModelName)
}

// EnsureDir creates dir (and parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
