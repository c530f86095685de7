package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestLabelHelpers(t *testing.T) {
	tests := []struct {
		name       string
		create     func(string) *widget.Label
		importance widget.Importance
		style      fyne.TextStyle
	}{
		{name: "Section", create: CreateSectionTitleLabel, importance: widget.HighImportance, style: fyne.TextStyle{Bold: true}},
		{name: "Setting", create: CreateSettingTitleLabel, importance: widget.MediumImportance, style: fyne.TextStyle{Bold: true}},
		{name: "Description", create: CreateSettingDescriptionLabel, importance: widget.LowImportance, style: fyne.TextStyle{Italic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := tt.create("Day Wallpaper")
			assert.Equal(t, "Day Wallpaper", label.Text)
			assert.Equal(t, fyne.TextWrapWord, label.Wrapping)
			assert.Equal(t, tt.importance, label.Importance)
			assert.Equal(t, tt.style, label.TextStyle)
		})
	}
}
