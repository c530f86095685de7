//go:build windows

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/dixieflatline76/DayNight/pkg/selection"
)

// nativeChooser uses the Windows common item dialog.
type nativeChooser struct{}

func newChooser(fyne.App) selection.Chooser {
	return nativeChooser{}
}

// Choose shows the open file dialog. The dialog is modal to the process, ctx
// is only checked before it opens.
func (nativeChooser) Choose(ctx context.Context, slot selection.ImageSlot) (selection.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return selection.Empty, err
	}

	patterns := make([]string, len(imageExtensions))
	for i, ext := range imageExtensions {
		patterns[i] = "*" + ext
	}
	pattern := strings.Join(patterns, ";")

	path, err := cfdutil.ShowOpenFileDialog(cfd.DialogConfig{
		Title: fmt.Sprintf("Choose %s Image", slot),
		Role:  "DayNight" + slot.String(),
		FileFilters: []cfd.FileFilter{
			{DisplayName: "Images (" + pattern + ")", Pattern: pattern},
		},
		SelectedFileFilterIndex: 0,
	})
	if errors.Is(err, cfd.ErrorCancelled) {
		return selection.Empty, selection.ErrPickCancelled
	}
	if err != nil {
		return selection.Empty, fmt.Errorf("open file dialog: %w", err)
	}
	return selection.FromPath(path), nil
}
