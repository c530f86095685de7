package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// SelectConfig holds the configuration for a select setting.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(int)
}

// BoolConfig holds the configuration for a boolean check setting.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(bool)
}

// ButtonWithConfirmationConfig holds configuration for a button with confirmation dialog.
type ButtonWithConfirmationConfig struct {
	Label          fyne.CanvasObject
	HelpContent    fyne.CanvasObject
	ButtonText     string
	ConfirmTitle   string
	ConfirmMessage string
	OnPressed      func()
}

// SettingsManager collects pending setting changes and applies them together
// when the Apply button is pressed.
type SettingsManager struct {
	pending     map[string]func()
	order       []string
	applyButton *widget.Button
	window      fyne.Window
}

// NewSettingsManager creates a new SettingsManager for window.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		pending: make(map[string]func()),
		window:  window,
	}
	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Disable()
	return sm
}

// apply runs pending callbacks in the order the settings were first changed.
func (sm *SettingsManager) apply() {
	sm.applyButton.Disable()
	for _, name := range sm.order {
		if callback, ok := sm.pending[name]; ok {
			callback()
		}
	}
	sm.pending = make(map[string]func())
	sm.order = nil
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if len(sm.pending) > 0 {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// GetApplySettingsButton returns the Apply Changes button to be placed in the window.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// HasPendingChanges reports whether any setting waits for Apply.
func (sm *SettingsManager) HasPendingChanges() bool {
	return len(sm.pending) > 0
}

// SetSettingChangedCallback records callback to run on Apply for settingName.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	if _, ok := sm.pending[settingName]; !ok {
		sm.order = append(sm.order, settingName)
	}
	sm.pending[settingName] = callback
	sm.checkAndEnableApply()
}

// RemoveSettingChangedCallback drops the pending change for settingName.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.pending, settingName)
	for i, name := range sm.order {
		if name == settingName {
			sm.order = append(sm.order[:i], sm.order[i+1:]...)
			break
		}
	}
	sm.checkAndEnableApply()
}

// CreateSelectSetting adds a select row to parent and returns the widget.
func (sm *SettingsManager) CreateSelectSetting(cfg *SelectConfig, parent *fyne.Container) *widget.Select {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	parent.Add(NewSplitRow(cfg.Label, selectWidget, splitOneThird))
	if cfg.HelpContent != nil {
		parent.Add(cfg.HelpContent)
	}

	selectWidget.OnChanged = func(string) {
		selectedIndex := selectWidget.SelectedIndex()
		if selectedIndex == cfg.InitialValue {
			sm.RemoveSettingChangedCallback(cfg.Name)
			return
		}
		sm.SetSettingChangedCallback(cfg.Name, func() {
			cfg.ApplyFunc(selectedIndex)
			cfg.InitialValue = selectedIndex
		})
	}
	return selectWidget
}

// CreateBoolSetting adds a check row to parent and returns the widget.
func (sm *SettingsManager) CreateBoolSetting(cfg *BoolConfig, parent *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue)

	parent.Add(NewSplitRow(cfg.Label, check, splitOneThird))
	if cfg.HelpContent != nil {
		parent.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		if b == cfg.InitialValue {
			sm.RemoveSettingChangedCallback(cfg.Name)
			return
		}
		sm.SetSettingChangedCallback(cfg.Name, func() {
			cfg.ApplyFunc(b)
			cfg.InitialValue = b
		})
	}
	return check
}

// CreateButtonWithConfirmationSetting adds a button that asks before running OnPressed.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *ButtonWithConfirmationConfig, parent *fyne.Container) *widget.Button {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" || sm.window == nil {
			cfg.OnPressed()
			return
		}
		dialog.NewConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(ok bool) {
			if ok {
				cfg.OnPressed()
			}
		}, sm.window).Show()
	})

	if cfg.Label != nil {
		parent.Add(NewSplitRow(cfg.Label, button, splitOneThird))
	} else {
		parent.Add(button)
	}
	if cfg.HelpContent != nil {
		parent.Add(cfg.HelpContent)
	}
	return button
}
