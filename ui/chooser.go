package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
)

// dialogChooser picks images with the fyne file dialog, hosted in its own window.
type dialogChooser struct {
	app fyne.App
}

// Choose blocks until the user picks a file, dismisses the dialog or ctx is done.
func (c *dialogChooser) Choose(ctx context.Context, slot selection.ImageSlot) (selection.ImageRef, error) {
	type result struct {
		ref selection.ImageRef
		err error
	}
	done := make(chan result, 1)
	send := func(r result) {
		select {
		case done <- r:
		default:
		}
	}

	var win fyne.Window
	fyne.Do(func() {
		win = c.app.NewWindow(fmt.Sprintf("Choose %s Image", slot))
		win.Resize(fyne.NewSize(800, 600))
		win.SetOnClosed(func() {
			send(result{err: selection.ErrPickCancelled})
		})

		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			switch {
			case err != nil:
				send(result{err: fmt.Errorf("file dialog: %w", err)})
			case reader == nil:
				send(result{err: selection.ErrPickCancelled})
			default:
				uri := reader.URI()
				_ = reader.Close()
				ref, err := refFromURI(uri)
				send(result{ref: ref, err: err})
			}
			win.Close()
		}, win)
		d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
		d.SetConfirmText("Choose")
		d.Resize(fyne.NewSize(780, 580))

		win.Show()
		d.Show()
	})

	select {
	case r := <-done:
		return r.ref, r.err
	case <-ctx.Done():
		fyne.Do(func() {
			if win != nil {
				win.Close()
			}
		})
		return selection.Empty, ctx.Err()
	}
}

// refFromURI converts a picked storage URI into an image reference. Only local
// files can be rendered, so other schemes are refused rather than stored.
func refFromURI(uri fyne.URI) (selection.ImageRef, error) {
	if uri == nil {
		return selection.Empty, errors.New("file dialog returned no location")
	}
	if uri.Scheme() != "file" {
		return selection.Empty, fmt.Errorf("%w: %s", wallpaper.ErrUnsupportedScheme, uri)
	}
	return selection.FromPath(uri.Path()), nil
}
