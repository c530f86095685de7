package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// newWrappedLabel returns a word-wrapped label with the given look.
func newWrappedLabel(text string, importance widget.Importance, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, style)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance
	return label
}

// CreateSectionTitleLabel creates the heading of a preferences section.
func CreateSectionTitleLabel(text string) *widget.Label {
	return newWrappedLabel(text, widget.HighImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingTitleLabel creates the label in front of a setting or wallpaper block.
func CreateSettingTitleLabel(text string) *widget.Label {
	return newWrappedLabel(text, widget.MediumImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingDescriptionLabel creates the help text under a setting.
func CreateSettingDescriptionLabel(text string) *widget.Label {
	return newWrappedLabel(text, widget.LowImportance, fyne.TextStyle{Italic: true})
}
