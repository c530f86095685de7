package selection

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	refA ImageRef = "file:///pics/a.png"
	refB ImageRef = "file:///pics/b.png"
)

// collector records snapshots delivered to a subscriber.
type collector struct {
	mu    sync.Mutex
	seen  []SelectionState
	added chan struct{}
}

func newCollector() *collector {
	return &collector{added: make(chan struct{}, 100)}
}

func (c *collector) record(s SelectionState) {
	c.mu.Lock()
	c.seen = append(c.seen, s)
	c.mu.Unlock()
	c.added <- struct{}{}
}

func (c *collector) waitFor(t *testing.T, n int) []SelectionState {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		c.mu.Lock()
		if len(c.seen) >= n {
			out := append([]SelectionState(nil), c.seen...)
			c.mu.Unlock()
			return out
		}
		c.mu.Unlock()
		select {
		case <-c.added:
		case <-deadline:
			t.Fatalf("timed out waiting for %d snapshots", n)
		}
	}
}

func TestStore_GetAfterSet(t *testing.T) {
	store := NewStore(newMemPrefs())

	for _, slot := range Slots() {
		assert.Equal(t, Empty, store.Get(slot))
		store.Set(slot, refA)
		assert.Equal(t, refA, store.Get(slot))
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	store := NewStore(newMemPrefs())

	store.Set(Day, refA)
	store.Set(Night, refB)
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, store.Snapshot())

	store.Set(Day, refB)
	assert.Equal(t, refB, store.Get(Night), "day update must not touch night")
}

func TestStore_Persistence(t *testing.T) {
	prefs := newMemPrefs()
	store := NewStore(prefs)
	store.Set(Day, refA)
	store.Set(Night, refB)

	assert.Equal(t, refA.String(), prefs.StringWithFallback("day", ""))
	assert.Equal(t, refB.String(), prefs.StringWithFallback("night", ""))

	reloaded := NewStore(prefs)
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, reloaded.Snapshot())

	reloaded.Clear(Night)
	assert.False(t, prefs.has("night"), "clearing a slot removes the persisted entry")
	assert.Equal(t, Empty, NewStore(prefs).Get(Night))
}

func TestStore_FynePreferences(t *testing.T) {
	prefs := test.NewApp().Preferences()
	prefs.RemoveValue("day")
	prefs.RemoveValue("night")

	store := NewStore(prefs)
	store.Set(Day, refA)
	assert.Equal(t, refA.String(), prefs.String("day"))
	assert.Equal(t, refA, NewStore(prefs).Get(Day))
}

func TestStore_IgnoresUnknownSlot(t *testing.T) {
	prefs := newMemPrefs()
	store := NewStore(prefs)
	store.Set(ImageSlot(5), refA)

	assert.Equal(t, 0, prefs.writes)
	assert.Equal(t, SelectionState{}, store.Snapshot())
}

func TestStore_SubscribeInitialSnapshot(t *testing.T) {
	store := NewStore(newMemPrefs())
	c := newCollector()
	unsubscribe := store.Subscribe(c.record)
	defer unsubscribe()

	seen := c.waitFor(t, 1)
	assert.Equal(t, SelectionState{Day: Empty, Night: Empty}, seen[0])
}

func TestStore_SubscribeStartsFromCurrentState(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Day, refA)

	c := newCollector()
	unsubscribe := store.Subscribe(c.record)
	defer unsubscribe()

	seen := c.waitFor(t, 1)
	assert.Equal(t, SelectionState{Day: refA}, seen[0])
}

func TestStore_NotificationsCarryOtherSlot(t *testing.T) {
	store := NewStore(newMemPrefs())
	c := newCollector()
	unsubscribe := store.Subscribe(c.record)
	defer unsubscribe()

	store.Set(Day, refA)
	store.Set(Night, refB)

	seen := c.waitFor(t, 3)
	require.Len(t, seen, 3)
	assert.Equal(t, SelectionState{}, seen[0])
	assert.Equal(t, SelectionState{Day: refA}, seen[1])
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, seen[2])
}

func TestStore_IdempotentSetNotifiesTwice(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Night, refB)

	c := newCollector()
	unsubscribe := store.Subscribe(c.record)
	defer unsubscribe()

	store.Set(Day, refA)
	store.Set(Day, refA)

	seen := c.waitFor(t, 3)
	assert.Equal(t, seen[1], seen[2])
	assert.Equal(t, refA, store.Get(Day))
	assert.Equal(t, refB, store.Get(Night), "repeated day sets must not corrupt night")
}

func TestStore_OrderAcrossSubscribers(t *testing.T) {
	store := NewStore(newMemPrefs())
	c1, c2 := newCollector(), newCollector()
	u1 := store.Subscribe(c1.record)
	defer u1()
	u2 := store.Subscribe(c2.record)
	defer u2()

	refs := []ImageRef{"file:///1.png", "file:///2.png", "file:///3.png", "file:///4.png"}
	for _, r := range refs {
		store.Set(Day, r)
	}

	s1 := c1.waitFor(t, len(refs)+1)
	s2 := c2.waitFor(t, len(refs)+1)
	assert.Equal(t, s1, s2)
	for i, r := range refs {
		assert.Equal(t, r, s1[i+1].Day)
	}
}

func TestStore_SlowSubscriberDoesNotBlockSet(t *testing.T) {
	store := NewStore(newMemPrefs())
	release := make(chan struct{})
	unsubscribe := store.Subscribe(func(SelectionState) { <-release })
	defer func() {
		close(release)
		unsubscribe()
	}()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			store.Set(Day, refA)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Set blocked on a slow subscriber")
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	store := NewStore(newMemPrefs())
	c := newCollector()
	unsubscribe := store.Subscribe(c.record)
	c.waitFor(t, 1)

	unsubscribe()
	unsubscribe() // idempotent

	store.Set(Day, refA)
	time.Sleep(50 * time.Millisecond)

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Len(t, c.seen, 1)
}

func TestStore_SubscriberMaySetReentrantly(t *testing.T) {
	store := NewStore(newMemPrefs())
	c := newCollector()
	unsubscribe := store.Subscribe(func(s SelectionState) {
		if s.Day == refA && s.Night.IsEmpty() {
			store.Set(Night, refB)
		}
		c.record(s)
	})
	defer unsubscribe()

	store.Set(Day, refA)
	seen := c.waitFor(t, 3)
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, seen[2])
}

func TestStore_Observe(t *testing.T) {
	store := NewStore(newMemPrefs())
	ctx, cancel := context.WithCancel(context.Background())
	ch := store.Observe(ctx)

	first := <-ch
	assert.Equal(t, SelectionState{}, first)

	store.Set(Day, refA)
	assert.Equal(t, SelectionState{Day: refA}, <-ch)

	store.Set(Night, refB)
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, <-ch)

	cancel()
	for range ch {
		// drain until closed
	}

	// A new observation starts its own sequence from the current state.
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	assert.Equal(t, SelectionState{Day: refA, Night: refB}, <-store.Observe(ctx2))
}
