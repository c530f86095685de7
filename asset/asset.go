package asset

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/DayNight/util/log"
)

//go:embed icons/* text/*
var assets embed.FS

// Manager manages the loading of UI assets and detection models.
type Manager struct {
	modelDir string
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetIcon loads and returns embedded icon asset by name.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	iconData, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}

	return fyne.NewStaticResource(name, iconData), nil
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(textBytes), nil
}

// SetModelDir sets the directory GetModel reads from.
func (am *Manager) SetModelDir(dir string) {
	am.modelDir = dir
}

// GetModel loads and returns a model file, such as the facefinder cascade, by name.
func (am *Manager) GetModel(name string) ([]byte, error) {
	if am.modelDir == "" {
		return nil, errors.New("model directory is not set")
	}
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("invalid model name %q", name)
	}
	modelData, err := os.ReadFile(filepath.Join(am.modelDir, name))
	if err != nil {
		log.Println("Error loading model:", err)
		return nil, err
	}
	return modelData, nil
}

// PlaceholderText is the message shown wherever a slot has no image.
func (am *Manager) PlaceholderText() string {
	text, err := am.GetText("placeholder.txt")
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		return "No image is selected"
	}
	return text
}
