package selection

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/dixieflatline76/DayNight/util/log"
)

// Preferences is the durable key-value backend of the Store.
type Preferences interface {
	StringWithFallback(key, fallback string) string
	SetString(key, value string)
	RemoveValue(key string)
}

var _ Preferences = fyne.Preferences(nil)

// Store is a thread-safe, durable record of the Day and Night selections.
// Every Set is delivered, as a full snapshot, to all current subscribers.
type Store struct {
	mu     sync.Mutex
	prefs  Preferences
	state  SelectionState
	subs   map[int]*subscription
	nextID int
}

// NewStore creates a Store backed by prefs and loads the persisted selections.
func NewStore(prefs Preferences) *Store {
	s := &Store{
		prefs: prefs,
		subs:  make(map[int]*subscription),
	}
	for _, slot := range Slots() {
		ref := ImageRef(prefs.StringWithFallback(slot.Key(), ""))
		s.state = s.state.With(slot, ref)
	}
	log.Debugf("Selection: loaded day=%q night=%q", s.state.Day, s.state.Night)
	return s
}

// Get returns the current reference for slot, or Empty if none was ever set.
func (s *Store) Get(slot ImageSlot) ImageRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Get(slot)
}

// Snapshot returns the current state of both slots.
func (s *Store) Snapshot() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set persists ref under slot and notifies every subscriber, even when the value is unchanged.
// Setting Empty removes the persisted entry.
func (s *Store) Set(slot ImageSlot, ref ImageRef) {
	if !slot.Valid() {
		log.Printf("Selection: ignoring set for unknown slot %d", int(slot))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ref.IsEmpty() {
		s.prefs.RemoveValue(slot.Key())
	} else {
		s.prefs.SetString(slot.Key(), ref.String())
	}
	s.state = s.state.With(slot, ref)

	// Enqueue while locked so every subscriber sees sets in the same order.
	for _, sub := range s.subs {
		sub.push(s.state)
	}
	log.Debugf("Selection: %s set to %q (%d subscribers)", slot, ref, len(s.subs))
}

// Clear resets slot to Empty.
func (s *Store) Clear(slot ImageSlot) {
	s.Set(slot, Empty)
}

// Subscribe registers fn to receive the current state followed by one snapshot per Set.
// fn runs on a goroutine owned by the subscription, never concurrently with itself.
// The returned function stops further deliveries; a delivery already in progress completes.
func (s *Store) Subscribe(fn func(SelectionState)) (unsubscribe func()) {
	sub := s.subscribe(fn)
	return sub.cancel
}

// Observe streams snapshots, starting with the current state, until ctx is done.
// The channel is closed once ctx is done.
func (s *Store) Observe(ctx context.Context) <-chan SelectionState {
	out := make(chan SelectionState)
	sub := s.subscribe(func(state SelectionState) {
		select {
		case out <- state:
		case <-ctx.Done():
		}
	})

	go func() {
		<-ctx.Done()
		sub.cancel()
		<-sub.done
		close(out)
	}()
	return out
}

func (s *Store) subscribe(fn func(SelectionState)) *subscription {
	sub := newSubscription(fn)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	sub.push(s.state)
	s.mu.Unlock()

	var once sync.Once
	sub.cancel = func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			sub.close()
		})
	}

	go sub.run()
	return sub
}

// subscription is an unbounded, ordered mailbox drained by its own goroutine.
type subscription struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []SelectionState
	closed  bool

	fn     func(SelectionState)
	cancel func()
	done   chan struct{}
}

func newSubscription(fn func(SelectionState)) *subscription {
	sub := &subscription{
		fn:   fn,
		done: make(chan struct{}),
	}
	sub.cond = sync.NewCond(&sub.mu)
	return sub
}

func (sub *subscription) push(state SelectionState) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.pending = append(sub.pending, state)
	sub.cond.Signal()
}

func (sub *subscription) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	sub.closed = true
	sub.pending = nil
	sub.cond.Broadcast()
}

func (sub *subscription) run() {
	defer close(sub.done)
	for {
		sub.mu.Lock()
		for len(sub.pending) == 0 && !sub.closed {
			sub.cond.Wait()
		}
		if sub.closed {
			sub.mu.Unlock()
			return
		}
		next := sub.pending[0]
		sub.pending = sub.pending[1:]
		sub.mu.Unlock()

		sub.fn(next)
	}
}
