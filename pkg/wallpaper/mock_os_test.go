package wallpaper

import (
	"os"
	"sync"

	"github.com/stretchr/testify/mock"
)

// mockDesktop stands in for the platform OS. Besides the mock expectations it
// remembers which rendered files were missing when they were applied.
type mockDesktop struct {
	mock.Mock

	mu      sync.Mutex
	missing []string
}

// acceptingDesktop returns a desktop that takes every wallpaper.
func acceptingDesktop() *mockDesktop {
	m := new(mockDesktop)
	m.On("setWallpaper", mock.AnythingOfType("string")).Return(nil)
	return m
}

func (m *mockDesktop) getDesktopDimension() (int, int, error) {
	args := m.Called()
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *mockDesktop) setWallpaper(path string) error {
	if _, err := os.Stat(path); err != nil {
		m.mu.Lock()
		m.missing = append(m.missing, path)
		m.mu.Unlock()
	}
	return m.Called(path).Error(0)
}

// missingFiles lists applied paths that did not exist at the time.
func (m *mockDesktop) missingFiles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.missing...)
}
