// Package wallpaper renders the selected day image to the desktop.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/util"
	"github.com/dixieflatline76/DayNight/util/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// renderedSlot is the slot that drives the desktop. Night selections are kept
// in the store but never drawn.
const renderedSlot = selection.Day

const (
	// Rendered files are named renderPrefix + uuid + renderExt. Only files
	// matching that pattern are ever pruned from the render directory.
	renderPrefix  = "daynight-"
	renderExt     = ".jpg"
	renderQuality = 95

	// RefreshInterval is the minimum time between two manual refreshes.
	RefreshInterval = time.Second
)

var (
	// ErrRefreshThrottled is returned by Refresh when called again within RefreshInterval.
	ErrRefreshThrottled = errors.New("refresh requested too soon")
	// ErrEngineStarted is returned by Start when the engine is already running.
	ErrEngineStarted = errors.New("wallpaper engine already started")
)

// Engine keeps the desktop in sync with the day selection of a store.
type Engine struct {
	store     *selection.Store
	os        OS
	resolver  Resolver
	composer  *Composer
	renderDir string

	mu       sync.Mutex
	fillMode FillMode
	surface  image.Point
	cancel   context.CancelFunc
	done     chan struct{}

	renderMu sync.Mutex // serializes Render
	lastFile string

	limiter *rate.Limiter
	renders *util.SafeCounter
}

// NewEngine creates an engine that writes rendered wallpapers to renderDir.
func NewEngine(store *selection.Store, renderDir string, composer *Composer) *Engine {
	if composer == nil {
		composer = NewComposer(DefaultPlaceholderText)
	}
	return &Engine{
		store:     store,
		os:        getOS(),
		resolver:  NewFileResolver(),
		composer:  composer,
		renderDir: renderDir,
		fillMode:  FillCenter,
		limiter:   rate.NewLimiter(rate.Every(RefreshInterval), 1),
		renders:   util.NewSafeInt(),
	}
}

// SetResolver replaces the resolver used to load images.
func (e *Engine) SetResolver(r Resolver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resolver = r
}

// SetSurface fixes the surface size instead of asking the OS. A zero size
// restores the OS lookup.
func (e *Engine) SetSurface(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.surface = image.Pt(width, height)
}

// SetFillMode changes how future renders size the image. Call Apply to redraw.
func (e *Engine) SetFillMode(mode FillMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fillMode = mode
}

// FillMode returns the current fill mode.
func (e *Engine) FillMode() FillMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fillMode
}

// RenderCount returns how many wallpapers have been applied.
func (e *Engine) RenderCount() int {
	return e.renders.Value()
}

// LastRendered returns the path of the most recently applied wallpaper.
func (e *Engine) LastRendered() string {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()
	return e.lastFile
}

// Start renders the current day image and then re-renders whenever it changes.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		return ErrEngineStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.done = make(chan struct{})
	go e.run(ctx, e.store.Observe(ctx), e.done)

	log.Printf("Wallpaper engine started, rendering to %s", e.renderDir)
	return nil
}

// Stop ends the update loop and waits for an in-progress render to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Println("Wallpaper engine stopped")
}

func (e *Engine) run(ctx context.Context, updates <-chan selection.SelectionState, done chan struct{}) {
	defer close(done)

	var last selection.ImageRef
	first := true
	for state := range updates {
		ref := state.Get(renderedSlot)
		if !first && ref == last {
			continue
		}
		first, last = false, ref

		if _, err := e.Render(ctx, ref); err != nil && ctx.Err() == nil {
			log.Printf("Error applying wallpaper for %s: %v", renderedSlot, err)
		}
	}
}

// Apply renders the current day image immediately.
func (e *Engine) Apply(ctx context.Context) (string, error) {
	return e.Render(ctx, e.store.Get(renderedSlot))
}

// Refresh is Apply limited to one call per RefreshInterval.
func (e *Engine) Refresh(ctx context.Context) (string, error) {
	if !e.limiter.Allow() {
		return "", ErrRefreshThrottled
	}
	return e.Apply(ctx)
}

// Render composes ref onto a surface-sized canvas, writes it to the render
// directory and sets it as the wallpaper. An empty or unreadable ref renders
// the placeholder.
func (e *Engine) Render(ctx context.Context, ref selection.ImageRef) (string, error) {
	e.renderMu.Lock()
	defer e.renderMu.Unlock()

	e.mu.Lock()
	mode, resolver := e.fillMode, e.resolver
	e.mu.Unlock()

	surface, err := e.surfaceSize()
	if err != nil {
		return "", err
	}

	canvas, err := e.compose(ctx, resolver, ref, surface, mode)
	if err != nil {
		return "", err
	}
	if err := checkContext(ctx); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.renderDir, 0755); err != nil {
		return "", fmt.Errorf("creating render directory: %w", err)
	}
	path := filepath.Join(e.renderDir, renderPrefix+uuid.NewString()+renderExt)
	if err := imaging.Save(canvas, path, imaging.JPEGQuality(renderQuality)); err != nil {
		return "", fmt.Errorf("saving rendered wallpaper: %w", err)
	}

	if err := e.os.setWallpaper(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("setting wallpaper: %w", err)
	}

	e.lastFile = path
	e.prune(path, ref)
	e.renders.Increment()
	log.Debugf("Applied %s (%dx%d, %s) from %q", path, surface.X, surface.Y, mode, ref)
	return path, nil
}

func (e *Engine) compose(ctx context.Context, resolver Resolver, ref selection.ImageRef, surface image.Point, mode FillMode) (image.Image, error) {
	img, err := resolver.Resolve(ctx, ref)
	if err == nil {
		var canvas *image.NRGBA
		canvas, err = e.composer.Compose(ctx, img, surface, mode)
		if err == nil {
			return canvas, nil
		}
	}
	if ctxErr := checkContext(ctx); ctxErr != nil {
		return nil, ctxErr
	}
	if !errors.Is(err, ErrEmptyReference) {
		log.Printf("Cannot show %q, using placeholder: %v", ref, err)
	}
	placeholder, err := e.composer.Placeholder(surface)
	if err != nil {
		return nil, err
	}
	return placeholder, nil
}

// surfaceSize returns the override if set, otherwise the desktop size.
func (e *Engine) surfaceSize() (image.Point, error) {
	e.mu.Lock()
	surface := e.surface
	e.mu.Unlock()

	if surface.X > 0 && surface.Y > 0 {
		return surface, nil
	}
	w, h, err := e.os.getDesktopDimension()
	if err != nil {
		return image.Point{}, fmt.Errorf("getting desktop dimensions: %w", err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("%w: desktop reported %dx%d", ErrInvalidSurface, w, h)
	}
	return image.Pt(w, h), nil
}

// prune removes earlier renders, keeping keep and whatever file ref points to.
// Files the engine did not name are left alone.
func (e *Engine) prune(keep string, ref selection.ImageRef) {
	entries, err := os.ReadDir(e.renderDir)
	if err != nil {
		log.Printf("Error listing render directory %s: %v", e.renderDir, err)
		return
	}
	selected, _ := ref.Path()

	for _, entry := range entries {
		if entry.IsDir() || !isRenderName(entry.Name()) {
			continue
		}
		p := filepath.Join(e.renderDir, entry.Name())
		if samePath(p, keep) || (selected != "" && samePath(p, selected)) {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("Error removing old wallpaper %s: %v", p, err)
		}
	}
}

// isRenderName reports whether name has the form of a file written by Render.
func isRenderName(name string) bool {
	if !strings.HasPrefix(name, renderPrefix) || !strings.HasSuffix(name, renderExt) {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(strings.TrimPrefix(name, renderPrefix), renderExt))
	return err == nil
}

func samePath(a, b string) bool {
	if a == b {
		return true
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
