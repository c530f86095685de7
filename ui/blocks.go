package ui

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
	"github.com/dixieflatline76/DayNight/util/log"
)

// preview is the thumbnail for one slot. Both fields are nil for an empty slot.
type preview struct {
	img image.Image
	err error
}

// renderPreviews composes a thumbnail for every non-empty slot of state, concurrently.
// A slot that cannot be loaded reports its error without affecting the others.
func renderPreviews(ctx context.Context, state selection.SelectionState, resolver wallpaper.Resolver,
	composer *wallpaper.Composer, mode wallpaper.FillMode) ([]preview, error) {
	slots := selection.Slots()
	previews := make([]preview, len(slots))
	surface := image.Pt(previewWidth, previewHeight)

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		ref := state.Get(slot)
		if ref.IsEmpty() {
			continue
		}
		g.Go(func() error {
			img, err := resolver.Resolve(gctx, ref)
			if err == nil {
				img, err = composer.Compose(gctx, img, surface, mode)
			}
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Printf("Cannot preview %s image %q: %v", slot, ref, err)
			}
			previews[i] = preview{img: img, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return previews, nil
}

// wallpaperBlock shows one slot: its preview or the empty state, with
// buttons to choose and clear the image. Tapping the preview also chooses.
type wallpaperBlock struct {
	slot         selection.ImageSlot
	title        *widget.Label
	image        *canvas.Image
	status       *widget.Label
	name         *widget.Label
	chooseButton *widget.Button
	clearButton  *widget.Button
	content      fyne.CanvasObject
}

func newWallpaperBlock(slot selection.ImageSlot, icon fyne.Resource, placeholder string, onChoose, onClear func()) *wallpaperBlock {
	b := &wallpaperBlock{slot: slot}

	b.title = CreateSettingTitleLabel(slot.String() + " Wallpaper")
	b.image = canvas.NewImageFromImage(nil)
	b.image.FillMode = canvas.ImageFillContain
	b.image.SetMinSize(fyne.NewSize(previewWidth, previewHeight))
	b.status = widget.NewLabelWithStyle(placeholder, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	b.name = widget.NewLabel("")
	b.name.Truncation = fyne.TextTruncateEllipsis

	tapArea := widget.NewButton("", onChoose)
	tapArea.Importance = widget.LowImportance

	b.chooseButton = widget.NewButtonWithIcon("Choose…", icon, onChoose)
	b.clearButton = widget.NewButton("Clear", onClear)
	b.clearButton.Disable()

	frame := container.NewStack(tapArea, b.image, container.NewCenter(b.status))
	buttons := container.NewBorder(nil, nil, nil, container.NewHBox(b.chooseButton, b.clearButton), b.name)
	b.content = container.NewBorder(b.title, buttons, nil, nil, frame)
	return b
}

// update shows p for ref. Must run on the fyne main goroutine.
func (b *wallpaperBlock) update(ref selection.ImageRef, p preview, placeholder string) {
	b.name.SetText(baseName(ref))
	switch {
	case ref.IsEmpty():
		b.image.Image = nil
		b.status.SetText(placeholder)
		b.status.Show()
		b.clearButton.Disable()
	case p.err != nil || p.img == nil:
		b.image.Image = nil
		b.status.SetText("Cannot load this image")
		b.status.Show()
		b.clearButton.Enable()
	default:
		b.image.Image = p.img
		b.status.Hide()
		b.clearButton.Enable()
	}
	b.image.Refresh()
}
