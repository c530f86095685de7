package hotkey

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBindings(t *testing.T) {
	var calls []string
	reapply := func() { calls = append(calls, "reapply") }
	day := func() { calls = append(calls, "day") }
	night := func() { calls = append(calls, "night") }

	bindings := DefaultBindings(reapply, day, night)
	if assert.Len(t, bindings, 3) {
		assert.Equal(t, "Re-apply Wallpaper", bindings[0].Name)
		assert.Equal(t, "Choose Day Image", bindings[1].Name)
		assert.Equal(t, "Choose Night Image", bindings[2].Name)
	}
	for _, b := range bindings {
		assert.NotEmpty(t, b.Name)
		b.Action()
	}
	assert.Equal(t, []string{"reapply", "day", "night"}, calls)
}

func TestDefaultBindingsSkipsNilActions(t *testing.T) {
	bindings := DefaultBindings(func() {}, nil, nil)
	assert.Len(t, bindings, 1)
	assert.Equal(t, "Re-apply Wallpaper", bindings[0].Name)

	assert.Empty(t, DefaultBindings(nil, nil, nil))
}

func TestStartListenersUnsupported(t *testing.T) {
	if Supported() {
		t.Skip("global hotkeys need a desktop session on this platform")
	}
	stop := StartListeners(context.Background(), DefaultBindings(func() {}, nil, nil))
	assert.NotNil(t, stop)
	stop()
	stop()
}
