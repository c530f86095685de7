package ui

import (
	"context"
	"image/color"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/DayNight/config"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
)

// fakeRenderer records calls instead of touching the desktop.
type fakeRenderer struct {
	mu         sync.Mutex
	mode       wallpaper.FillMode
	applies    int
	refreshes  int
	refreshErr error
}

func (f *fakeRenderer) FillMode() wallpaper.FillMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *fakeRenderer) SetFillMode(mode wallpaper.FillMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = mode
}

func (f *fakeRenderer) Apply(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applies++
	return "applied.jpg", nil
}

func (f *fakeRenderer) Refresh(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return "refreshed.jpg", f.refreshErr
}

func (f *fakeRenderer) counts() (applies, refreshes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applies, f.refreshes
}

// notifications collects notifications sent by the app.
type notifications struct {
	mu   sync.Mutex
	sent []*fyne.Notification
}

func (n *notifications) send(notification *fyne.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

func (n *notifications) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testHarness struct {
	app      *DayNightApp
	store    *selection.Store
	renderer *fakeRenderer
	notes    *notifications
}

func newTestHarness(t *testing.T, chooser selection.Chooser) *testHarness {
	t.Helper()
	a := test.NewApp()
	store := selection.NewStore(a.Preferences())
	renderer := &fakeRenderer{}
	notes := &notifications{}

	da := NewDayNightApp(a, store, renderer, config.EnvConfig{DisableUpdateCheck: true})
	da.notify = notes.send
	if chooser != nil {
		da.picks = selection.NewPickFlow(store, chooser)
	}
	t.Cleanup(da.Shutdown)

	return &testHarness{app: da, store: store, renderer: renderer, notes: notes}
}

// waitForBlocks waits until the preferences view applies a snapshot that satisfies cond.
func waitForBlocks(t *testing.T, pv *preferencesView, cond func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case <-pv.updates:
			if cond() {
				return
			}
		case <-deadline:
			require.FailNow(t, "preferences blocks did not reach the expected state")
		}
	}
}

func writeImage(t *testing.T, dir, name string, w, h int) selection.ImageRef {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(w, h, imagingRed), path))
	return selection.FromPath(path)
}

var imagingRed = color.NRGBA{R: 255, A: 255}
