// Package ui implements the DayNight tray menu and preferences window.
package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/DayNight/asset"
	"github.com/dixieflatline76/DayNight/config"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
	"github.com/dixieflatline76/DayNight/util"
	"github.com/dixieflatline76/DayNight/util/log"
)

// Renderer is the part of the wallpaper engine the UI drives.
type Renderer interface {
	FillMode() wallpaper.FillMode
	SetFillMode(mode wallpaper.FillMode)
	Apply(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}

// DayNightApp represents the application
type DayNightApp struct {
	app      fyne.App
	assetMgr *asset.Manager
	cfg      *config.AppConfig
	env      config.EnvConfig
	os       OS

	store    *selection.Store
	picks    *selection.PickFlow
	renderer Renderer
	resolver wallpaper.Resolver
	composer *wallpaper.Composer

	ctx    context.Context
	cancel context.CancelFunc

	trayMenu *fyne.Menu
	prefs    *preferencesView
	notify   func(*fyne.Notification)

	mu        sync.Mutex
	updateURL *url.URL
}

// NewDayNightApp wires the tray app to store and renderer. The chooser used
// for picks is the platform default.
func NewDayNightApp(a fyne.App, store *selection.Store, renderer Renderer, env config.EnvConfig) *DayNightApp {
	ctx, cancel := context.WithCancel(context.Background())
	assetMgr := asset.NewManager()
	da := &DayNightApp{
		app:      a,
		assetMgr: assetMgr,
		cfg:      config.NewAppConfig(a.Preferences()),
		env:      env,
		os:       getOS(),
		store:    store,
		picks:    selection.NewPickFlow(store, newChooser(a)),
		renderer: renderer,
		resolver: wallpaper.NewFileResolver(),
		composer: wallpaper.NewComposer(assetMgr.PlaceholderText()),
		ctx:      ctx,
		cancel:   cancel,
	}
	da.notify = a.SendNotification
	return da
}

// SetFaceFinder lets preview thumbnails use face detection in Smart mode.
func (da *DayNightApp) SetFaceFinder(f wallpaper.FaceFinder) {
	da.composer.Faces = f
}

// Config returns the application configuration.
func (da *DayNightApp) Config() *config.AppConfig {
	return da.cfg
}

// CreateTrayMenu creates the tray menu for the application. It fails when
// the driver has no system tray.
func (da *DayNightApp) CreateTrayMenu() error {
	desk, ok := da.app.(desktop.App)
	if !ok {
		return errors.New("tray icon not supported on this platform")
	}

	trayMenu := fyne.NewMenu(config.AppName,
		da.createMenuItem("Choose Day Image…", func() { da.ChooseImage(selection.Day) }, "day.svg"),
		da.createMenuItem("Choose Night Image…", func() { da.ChooseImage(selection.Night) }, "night.svg"),
		fyne.NewMenuItemSeparator(),
		da.createMenuItem("Re-apply Wallpaper", da.Reapply, ""),
		fyne.NewMenuItemSeparator(),
		da.createMenuItem("Preferences", da.CreatePreferencesWindow, ""),
		da.createMenuItem("About "+config.AppName, da.CreateSplashScreen, "tray.svg"),
		fyne.NewMenuItemSeparator(),
		da.createMenuItem("Quit", da.app.Quit, ""),
	)

	if trayIcon, err := da.assetMgr.GetIcon("tray.svg"); err == nil {
		desk.SetSystemTrayIcon(trayIcon)
		da.app.SetIcon(trayIcon)
	}
	desk.SetSystemTrayMenu(trayMenu)
	da.trayMenu = trayMenu
	return nil
}

func (da *DayNightApp) createMenuItem(label string, action func(), iconName string) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	if iconName == "" {
		return mi
	}
	icon, err := da.assetMgr.GetIcon(iconName)
	if err != nil {
		log.Printf("Failed to load icon: %v", err)
		return mi
	}
	mi.Icon = icon
	return mi
}

// ChooseImage runs the picker for slot in the background.
func (da *DayNightApp) ChooseImage(slot selection.ImageSlot) {
	go func() {
		_ = da.pick(da.ctx, slot)
	}()
}

// pick runs the picker for slot and reports the outcome to the user.
func (da *DayNightApp) pick(ctx context.Context, slot selection.ImageSlot) error {
	ref, err := da.picks.Run(ctx, slot)
	switch {
	case err == nil:
		log.Printf("%s image set to %q", slot, ref)
	case errors.Is(err, selection.ErrPickCancelled):
		log.Debugf("%s image pick cancelled", slot)
	case errors.Is(err, selection.ErrPickInFlight):
		log.Debugf("%s image picker already open", slot)
	case errors.Is(err, context.Canceled):
		log.Debugf("%s image pick stopped: %v", slot, err)
	default:
		log.Printf("Error choosing %s image: %v", slot, err)
		da.sendNotification(config.AppName, fmt.Sprintf("Could not choose the %s image: %v", slot, err))
	}
	return err
}

// Reapply redraws the wallpaper from the current day image.
func (da *DayNightApp) Reapply() {
	go func() {
		if _, err := da.renderer.Refresh(da.ctx); err != nil {
			if errors.Is(err, wallpaper.ErrRefreshThrottled) {
				log.Debugf("Re-apply ignored: %v", err)
				return
			}
			log.Printf("Error re-applying wallpaper: %v", err)
			da.sendNotification(config.AppName, "Could not apply the wallpaper: "+err.Error())
		}
	}()
}

// sendNotification shows a system notification if the user allows them.
func (da *DayNightApp) sendNotification(title, content string) {
	if !da.cfg.GetAppNotificationsEnabled() {
		return
	}
	da.notify(fyne.NewNotification(title, content))
}

// CreateSplashScreen shows the about screen for a few seconds.
func (da *DayNightApp) CreateSplashScreen() {
	drv, ok := da.app.Driver().(desktop.Driver)
	if !ok {
		log.Println("Splash screen not supported")
		return
	}

	about, err := da.assetMgr.GetText("about.txt")
	if err != nil {
		about = config.AppName
	}
	aboutLabel := widget.NewLabel(about)
	aboutLabel.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{}
	if icon, err := da.assetMgr.GetIcon("tray.svg"); err == nil {
		img := canvas.NewImageFromResource(icon)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(96, 96))
		items = append(items, img)
	}
	items = append(items,
		CreateSectionTitleLabel(config.AppName),
		aboutLabel,
		CreateSettingDescriptionLabel("Version: "+config.AppVersion),
	)

	splash := drv.CreateSplashWindow()
	splash.SetContent(container.NewPadded(container.NewVBox(items...)))
	splash.Resize(fyne.NewSize(420, 320))
	splash.CenterOnScreen()
	splash.Show()

	go func() {
		time.Sleep(aboutSplashTime)
		fyne.Do(splash.Close)
	}()
}

// CheckForUpdates looks for a newer release in the background and adds a
// tray item when one exists. Disabled by preference or environment.
func (da *DayNightApp) CheckForUpdates() {
	if da.env.DisableUpdateCheck || !da.cfg.GetUpdateCheckEnabled() {
		log.Debugf("Update check disabled")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(da.ctx, updateCheckTimeout)
		defer cancel()

		result, err := util.CheckForUpdatesContext(ctx, &http.Client{Timeout: updateCheckTimeout})
		if err != nil {
			log.Printf("Update check failed: %v", err)
			return
		}
		if !result.UpdateAvailable {
			log.Debugf("%s is up to date (%s)", config.AppName, result.CurrentVersion)
			return
		}
		fyne.Do(func() { da.addUpdateMenuItem(result) })
	}()
}

func (da *DayNightApp) addUpdateMenuItem(result *util.CheckForUpdatesResult) {
	releaseURL, err := url.Parse(result.ReleaseURL)
	if err != nil {
		log.Printf("Invalid release URL %q: %v", result.ReleaseURL, err)
		return
	}
	da.mu.Lock()
	already := da.updateURL != nil
	da.updateURL = releaseURL
	da.mu.Unlock()
	if already || da.trayMenu == nil {
		return
	}

	item := fyne.NewMenuItem(updateMenuItemPrefix+result.LatestVersion, func() {
		if err := da.app.OpenURL(releaseURL); err != nil {
			log.Printf("Failed to open %s: %v", releaseURL, err)
		}
	})
	da.trayMenu.Items = append([]*fyne.MenuItem{item, fyne.NewMenuItemSeparator()}, da.trayMenu.Items...)
	da.trayMenu.Refresh()
	da.sendNotification(config.AppName, fmt.Sprintf("Version %s is available.", result.LatestVersion))
}

// Run runs the application until Quit.
func (da *DayNightApp) Run() {
	da.app.Run()
	da.cancel()
}

// Shutdown cancels background work started by the UI.
func (da *DayNightApp) Shutdown() {
	da.cancel()
	if da.prefs != nil {
		da.prefs.close()
	}
}

// baseName returns the last path element of a reference for display.
func baseName(ref selection.ImageRef) string {
	if ref.IsEmpty() {
		return ""
	}
	if p, ok := ref.Path(); ok {
		return filepath.Base(p)
	}
	return path.Base(ref.String())
}
