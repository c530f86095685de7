package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/DayNight/config"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
	"github.com/dixieflatline76/DayNight/util/log"
)

// preferencesView is an open Preferences window and its store subscription.
type preferencesView struct {
	window      fyne.Window
	blocks      []*wallpaperBlock
	settings    *SettingsManager
	fillSelect  *widget.Select
	cancel      context.CancelFunc
	unsubscribe func()
	updates     chan struct{} // signalled after each applied snapshot, tests only
}

func (pv *preferencesView) close() {
	pv.unsubscribe()
	pv.cancel()
}

// CreatePreferencesWindow opens the Preferences window, or focuses it if it is
// already open. Must run on the fyne main goroutine.
func (da *DayNightApp) CreatePreferencesWindow() {
	if da.prefs != nil {
		da.prefs.window.RequestFocus()
		return
	}

	w := da.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	w.Resize(fyne.NewSize(720, 820))
	w.CenterOnScreen()

	pv := &preferencesView{window: w, settings: NewSettingsManager(w)}
	placeholder := da.assetMgr.PlaceholderText()

	blocks := container.NewVBox()
	for _, slot := range selection.Slots() {
		icon, _ := da.assetMgr.GetIcon(slot.Key() + ".svg")
		block := newWallpaperBlock(slot, icon, placeholder,
			func() { da.ChooseImage(slot) },
			func() { da.store.Clear(slot) },
		)
		pv.blocks = append(pv.blocks, block)
		blocks.Add(block.content)
		blocks.Add(widget.NewSeparator())
	}

	settings := container.NewVBox()
	da.createSettings(pv, settings)

	closeButton := widget.NewButton("Close", w.Close)
	footer := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(pv.settings.GetApplySettingsButton(), layout.NewSpacer(), closeButton),
	)

	body := container.NewVBox(
		CreateSectionTitleLabel("Wallpapers"),
		CreateSettingDescriptionLabel("Choose an image for the day and one for the night. The day image is drawn on your desktop."),
		blocks,
		settings,
	)
	w.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(body)))

	ctx, cancel := context.WithCancel(da.ctx)
	pv.cancel = cancel
	pv.updates = make(chan struct{}, 16)
	pv.unsubscribe = da.store.Subscribe(func(state selection.SelectionState) {
		da.refreshBlocks(ctx, pv, state, placeholder)
	})

	w.SetOnClosed(func() {
		pv.close()
		da.prefs = nil
		da.os.TransformToBackground()
	})
	da.prefs = pv

	da.os.TransformToForeground()
	w.Show()
}

// refreshBlocks renders previews for state off the main goroutine, then
// updates the blocks on it.
func (da *DayNightApp) refreshBlocks(ctx context.Context, pv *preferencesView, state selection.SelectionState, placeholder string) {
	previews, err := renderPreviews(ctx, state, da.resolver, da.composer, da.renderer.FillMode())
	if err != nil {
		log.Debugf("Preview rendering stopped: %v", err)
		return
	}
	fyne.Do(func() {
		if ctx.Err() != nil {
			return
		}
		for i, block := range pv.blocks {
			block.update(state.Get(block.slot), previews[i], placeholder)
		}
		select {
		case pv.updates <- struct{}{}:
		default:
		}
	})
}

// createSettings adds the general settings section to parent.
func (da *DayNightApp) createSettings(pv *preferencesView, parent *fyne.Container) {
	sm := pv.settings
	parent.Add(CreateSectionTitleLabel("Settings"))

	initialMode := da.renderer.FillMode()
	pv.fillSelect = sm.CreateSelectSetting(&SelectConfig{
		Name:         config.FillModeKey,
		Options:      wallpaper.FillModeNames(),
		InitialValue: int(initialMode),
		Label:        CreateSettingTitleLabel("Fill Mode:"),
		HelpContent:  CreateSettingDescriptionLabel("Center keeps the image at its size, Fill scales it to cover the screen, Smart crops to the most interesting part."),
		ApplyFunc: func(index int) {
			mode := wallpaper.FillModes()[index]
			da.cfg.SetFillMode(mode.String())
			da.renderer.SetFillMode(mode)
			go func() {
				if _, err := da.renderer.Apply(da.ctx); err != nil {
					log.Printf("Error applying wallpaper after fill mode change: %v", err)
				}
			}()
			go da.refreshBlocks(da.ctx, pv, da.store.Snapshot(), da.assetMgr.PlaceholderText())
		},
	}, parent)

	sm.CreateBoolSetting(&BoolConfig{
		Name:         config.AppNotificationsEnabledKey,
		InitialValue: da.cfg.GetAppNotificationsEnabled(),
		Label:        CreateSettingTitleLabel("System Notifications:"),
		HelpContent:  CreateSettingDescriptionLabel("Show a notification when an image cannot be applied or an update is available."),
		ApplyFunc:    da.cfg.SetAppNotificationsEnabled,
	}, parent)

	sm.CreateBoolSetting(&BoolConfig{
		Name:         config.AppUpdateCheckEnabledKey,
		InitialValue: da.cfg.GetUpdateCheckEnabled(),
		Label:        CreateSettingTitleLabel("Check for Updates:"),
		HelpContent:  CreateSettingDescriptionLabel("Look for a new release on GitHub at startup."),
		ApplyFunc:    da.cfg.SetUpdateCheckEnabled,
	}, parent)

	sm.CreateButtonWithConfirmationSetting(&ButtonWithConfirmationConfig{
		Label:          CreateSettingTitleLabel("Reset Images:"),
		ButtonText:     "Clear Both Images",
		ConfirmTitle:   "Please Confirm",
		ConfirmMessage: "Clear the day and night images?",
		OnPressed: func() {
			for _, slot := range selection.Slots() {
				da.store.Clear(slot)
			}
		},
	}, parent)
}
