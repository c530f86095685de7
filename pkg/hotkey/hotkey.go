// Package hotkey registers global keyboard shortcuts.
package hotkey

import (
	"context"
	"sync"
	"time"

	"github.com/dixieflatline76/DayNight/util/log"
	"golang.design/x/hotkey"
)

// debounce is the pause after an action before the next keydown is handled.
const debounce = 200 * time.Millisecond

// Binding ties a key chord to an action.
type Binding struct {
	Name      string
	Modifiers []hotkey.Modifier
	Key       hotkey.Key
	Label     string
	Action    func()
}

// DefaultBindings returns the application shortcuts. Bindings whose action is
// nil are left out.
func DefaultBindings(reapply, chooseDay, chooseNight func()) []Binding {
	all := []Binding{
		{Name: "Re-apply Wallpaper", Modifiers: chordMods, Key: keyR, Label: chordLabel + "R", Action: reapply},
		{Name: "Choose Day Image", Modifiers: chordMods, Key: keyD, Label: chordLabel + "D", Action: chooseDay},
		{Name: "Choose Night Image", Modifiers: chordMods, Key: keyN, Label: chordLabel + "N", Action: chooseNight},
	}
	bindings := all[:0]
	for _, b := range all {
		if b.Action != nil {
			bindings = append(bindings, b)
		}
	}
	return bindings
}

// Supported reports whether global hotkeys work on this platform.
func Supported() bool {
	return supported
}

// StartListeners registers every binding and runs its action on each keydown
// until ctx is done or stop is called. Bindings that fail to register are
// logged and skipped.
func StartListeners(ctx context.Context, bindings []Binding) (stop func()) {
	if !supported {
		log.Println("Global hotkeys are not supported on this platform")
		return func() {}
	}
	if !HasAccessibility() {
		log.Println("Accessibility permission missing, hotkeys may not fire")
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup

	registerAndListen := func(b Binding) {
		hk := hotkey.New(b.Modifiers, b.Key)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register hotkey %s (%s): %v", b.Name, b.Label, err)
			return
		}
		log.Printf("Registered hotkey: %s (%s)", b.Name, b.Label)

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if err := hk.Unregister(); err != nil {
					log.Debugf("Unregistering hotkey %s: %v", b.Name, err)
				}
			}()
			for {
				select {
				case <-ctx.Done():
					return
				case <-hk.Keydown():
					log.Debugf("Hotkey pressed: %s", b.Name)
					b.Action()
					time.Sleep(debounce)
				}
			}
		}()
	}

	for _, b := range bindings {
		if b.Action == nil {
			continue
		}
		registerAndListen(b)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}
