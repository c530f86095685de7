package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/dixieflatline76/DayNight/util"
	"github.com/dixieflatline76/DayNight/util/log"
)

var (
	// ErrPickCancelled is returned by a Chooser when the user dismisses the picker.
	ErrPickCancelled = errors.New("image pick cancelled")
	// ErrPickInFlight is returned when a pick for the same slot is already running.
	ErrPickInFlight = errors.New("image pick already in progress")
)

// Chooser presents an image picker and returns the chosen reference.
// Implementations must return ErrPickCancelled, not Empty, when the user cancels.
type Chooser interface {
	Choose(ctx context.Context, slot ImageSlot) (ImageRef, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, slot ImageSlot) (ImageRef, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, slot ImageSlot) (ImageRef, error) {
	return f(ctx, slot)
}

// PickFlow runs a Chooser for a slot and records the result in a Store.
// At most one pick per slot runs at a time.
type PickFlow struct {
	store    *Store
	chooser  Chooser
	inFlight [slotCount]util.SafeFlag
}

// NewPickFlow creates a PickFlow writing to store.
func NewPickFlow(store *Store, chooser Chooser) *PickFlow {
	return &PickFlow{store: store, chooser: chooser}
}

// Run asks the chooser for an image for slot. The store is only written on success;
// cancellation and errors leave the previous selection in place.
func (p *PickFlow) Run(ctx context.Context, slot ImageSlot) (ImageRef, error) {
	if !slot.Valid() {
		return Empty, fmt.Errorf("pick: unknown slot %d", int(slot))
	}

	flag := &p.inFlight[slot.Code()]
	if !flag.TrySet() {
		return Empty, ErrPickInFlight
	}
	defer flag.Set(false)

	log.Debugf("Pick: request %d (%s) started", slot.Code(), slot)
	ref, err := p.chooser.Choose(ctx, slot)
	if err != nil {
		if errors.Is(err, ErrPickCancelled) {
			log.Printf("Pick: request %d (%s) cancelled, keeping %q", slot.Code(), slot, p.store.Get(slot))
		} else {
			log.Printf("Pick: request %d (%s) failed: %v", slot.Code(), slot, err)
		}
		return Empty, err
	}

	p.store.Set(slot, ref)
	log.Printf("Pick: request %d (%s) selected %q", slot.Code(), slot, ref)
	return ref, nil
}

// InFlight reports whether a pick for slot is currently running.
func (p *PickFlow) InFlight(slot ImageSlot) bool {
	if !slot.Valid() {
		return false
	}
	return p.inFlight[slot.Code()].Value()
}
