package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// splitOneThird gives the label column a third of a settings row.
const splitOneThird float32 = 1.0 / 3

// splitLayout places two widgets side by side, the first taking ratio of the width.
type splitLayout struct {
	ratio float32
}

// MinSize is the sum of the widths and the larger height.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) != 2 {
		return fyne.NewSize(0, 0)
	}
	w1, w2 := objects[0].MinSize(), objects[1].MinSize()
	return fyne.NewSize(w1.Width+w2.Width, fyne.Max(w1.Height, w2.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	first := size.Width * s.ratio
	height := s.MinSize(objects).Height

	objects[0].Resize(fyne.NewSize(first, height))
	objects[0].Move(fyne.NewPos(0, 0))
	objects[1].Resize(fyne.NewSize(size.Width-first, height))
	objects[1].Move(fyne.NewPos(first, 0))
}

// NewSplitRow creates a row where widget1 takes ratio of the width.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, ratio float32) *fyne.Container {
	return container.New(&splitLayout{ratio: ratio}, widget1, widget2)
}
