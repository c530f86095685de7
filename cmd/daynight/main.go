package main

import (
	"context"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/dixieflatline76/DayNight/asset"
	"github.com/dixieflatline76/DayNight/config"
	"github.com/dixieflatline76/DayNight/pkg/hotkey"
	"github.com/dixieflatline76/DayNight/pkg/selection"
	"github.com/dixieflatline76/DayNight/pkg/wallpaper"
	"github.com/dixieflatline76/DayNight/ui"
	"github.com/dixieflatline76/DayNight/util/log"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	locked, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single instance lock: %v", err)
	}
	if !locked {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	a := app.NewWithID(config.AppID)
	store := selection.NewStore(a.Preferences())

	renderDir := config.GetRenderDir(env)
	if err := config.EnsureDir(renderDir); err != nil {
		log.Fatalf("Failed to prepare render directory: %v", err)
	}

	assetMgr := asset.NewManager()
	composer := wallpaper.NewComposer(assetMgr.PlaceholderText())
	faces := loadFaceFinder(assetMgr, config.GetFaceModelPath(env))
	if faces != nil {
		composer.Faces = faces
	}

	engine := wallpaper.NewEngine(store, renderDir, composer)
	if w, h, ok := env.SurfaceOverride(); ok {
		log.Printf("Using surface override %dx%d", w, h)
		engine.SetSurface(w, h)
	}

	dn := ui.NewDayNightApp(a, store, engine, env)
	if faces != nil {
		dn.SetFaceFinder(faces)
	}
	if mode, ok := wallpaper.ParseFillMode(dn.Config().GetFillMode()); ok {
		engine.SetFillMode(mode)
	} else {
		log.Printf("Unknown fill mode %q, using %s", dn.Config().GetFillMode(), engine.FillMode())
	}

	trayErr := dn.CreateTrayMenu()
	if trayErr != nil {
		log.Printf("%v, opening preferences instead", trayErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	stopHotkeys := func() {}

	a.Lifecycle().SetOnStarted(func() {
		if err := engine.Start(ctx); err != nil {
			log.Printf("Failed to start wallpaper engine: %v", err)
		}
		if env.DisableHotkeys {
			log.Println("Global hotkeys disabled by environment")
		} else {
			stopHotkeys = hotkey.StartListeners(ctx, hotkey.DefaultBindings(
				dn.Reapply,
				func() { dn.ChooseImage(selection.Day) },
				func() { dn.ChooseImage(selection.Night) },
			))
		}
		dn.CheckForUpdates()
		if trayErr != nil {
			dn.CreatePreferencesWindow()
		}
	})

	dn.Run()

	cancel()
	stopHotkeys()
	engine.Stop()
	dn.Shutdown()
}

// loadFaceFinder reads the pigo cascade at path. Smart fill works without
// it, so a missing or broken model only disables face detection.
func loadFaceFinder(am *asset.Manager, path string) *wallpaper.PigoFaceFinder {
	am.SetModelDir(filepath.Dir(path))
	modelData, err := am.GetModel(filepath.Base(path))
	if err != nil {
		log.Printf("Face detection disabled, no cascade at %s", path)
		return nil
	}
	finder, err := wallpaper.NewPigoFaceFinder(modelData)
	if err != nil {
		log.Printf("Face detection disabled: %v", err)
		return nil
	}
	log.Println("Face detection model loaded")
	return finder
}
