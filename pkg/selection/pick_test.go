package selection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedChooser(ref ImageRef, err error) Chooser {
	return ChooserFunc(func(context.Context, ImageSlot) (ImageRef, error) {
		return ref, err
	})
}

func TestPickFlow_Selects(t *testing.T) {
	store := NewStore(newMemPrefs())
	flow := NewPickFlow(store, fixedChooser(refA, nil))

	ref, err := flow.Run(context.Background(), Day)
	require.NoError(t, err)
	assert.Equal(t, refA, ref)
	assert.Equal(t, refA, store.Get(Day))
	assert.Equal(t, Empty, store.Get(Night))
}

func TestPickFlow_CancelKeepsPreviousSelection(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Day, refA)

	flow := NewPickFlow(store, fixedChooser(Empty, ErrPickCancelled))
	_, err := flow.Run(context.Background(), Day)

	assert.ErrorIs(t, err, ErrPickCancelled)
	assert.Equal(t, refA, store.Get(Day))
}

func TestPickFlow_ErrorKeepsPreviousSelection(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Night, refB)

	boom := errors.New("dialog crashed")
	flow := NewPickFlow(store, fixedChooser(refA, boom))
	_, err := flow.Run(context.Background(), Night)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, refB, store.Get(Night))
}

func TestPickFlow_SelectedEmptyClears(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Day, refA)

	flow := NewPickFlow(store, fixedChooser(Empty, nil))
	_, err := flow.Run(context.Background(), Day)

	require.NoError(t, err)
	assert.Equal(t, Empty, store.Get(Day))
}

func TestPickFlow_OneInFlightPerSlot(t *testing.T) {
	store := NewStore(newMemPrefs())
	started := make(chan ImageSlot, 2)
	release := make(chan struct{})

	flow := NewPickFlow(store, ChooserFunc(func(ctx context.Context, slot ImageSlot) (ImageRef, error) {
		started <- slot
		<-release
		return refA, nil
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := flow.Run(context.Background(), Day)
		assert.NoError(t, err)
	}()
	<-started
	assert.True(t, flow.InFlight(Day))

	_, err := flow.Run(context.Background(), Day)
	assert.ErrorIs(t, err, ErrPickInFlight)

	// The other slot is independent.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := flow.Run(context.Background(), Night)
		assert.NoError(t, err)
	}()
	select {
	case slot := <-started:
		assert.Equal(t, Night, slot)
	case <-time.After(2 * time.Second):
		t.Fatal("night pick did not start")
	}

	close(release)
	wg.Wait()
	assert.False(t, flow.InFlight(Day))
	assert.False(t, flow.InFlight(Night))
}

func TestPickFlow_ContextCancelled(t *testing.T) {
	store := NewStore(newMemPrefs())
	store.Set(Day, refA)

	flow := NewPickFlow(store, ChooserFunc(func(ctx context.Context, _ ImageSlot) (ImageRef, error) {
		<-ctx.Done()
		return Empty, ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.Run(ctx, Day)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, refA, store.Get(Day))
}

func TestPickFlow_UnknownSlot(t *testing.T) {
	flow := NewPickFlow(NewStore(newMemPrefs()), fixedChooser(refA, nil))
	_, err := flow.Run(context.Background(), ImageSlot(3))
	assert.Error(t, err)
	assert.False(t, flow.InFlight(ImageSlot(3)))
}
