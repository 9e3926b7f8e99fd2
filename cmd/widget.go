package main

import (
	"errors"
	"log"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/platform"
	"aurafocus/internal/ui/cube"
	"aurafocus/internal/ui/faces"
	"aurafocus/internal/ui/preferences"
	"aurafocus/internal/ui/tray"
	"aurafocus/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"
)

const widgetEventBuffer = 32

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Open the desktop widget (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget()
	},
}

// fyneNotifier shows completion notifications through the desktop.
type fyneNotifier struct {
	app fyne.App
}

func (notifier fyneNotifier) Notify(note timekeeper.Notification) error {
	notifier.app.SendNotification(fyne.NewNotification(note.Title, note.Body))
	return nil
}

func runWidget() error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	fyneApp := app.NewWithID("com.aurafocus.app")
	fyneApp.SetIcon(resources.MustIcon(resources.LogoIcon))

	keeper := sess.keeper
	keeper.SetNotifier(fyneNotifier{app: fyneApp})
	nav := faces.NewNavigator(keeper)
	settings := preferences.FromState(sess.state)
	autostart := platform.NewService()

	var (
		cubeWindow  *cube.Window
		trayManager *tray.Manager
	)
	render := func() {
		cubeWindow.Render(cube.NewView(keeper.Snapshot(), nav.Current(), settings.Language))
	}
	saveUI := func() {
		if err := sess.store.SaveUI(settings.UIPreferences()); err != nil {
			log.Printf("storage: %v", err)
		}
	}
	setGhostMode := func(enabled bool) {
		settings.GhostMode = enabled
		cubeWindow.SetGhostMode(enabled)
		if trayManager != nil {
			trayManager.SetGhostMode(enabled)
		}
	}
	openSettings := func() {
		nav.SetFace(faces.FaceSettings)
		render()
		cubeWindow.Show()
	}

	var form *preferences.Form
	form = preferences.NewForm(settings, func(updated preferences.Settings, patch model.ConfigPatch) {
		keeper.UpdateConfig(patch)
		applied := applyLaunchAtLogin(autostart, settings, updated)
		if applied != updated {
			form.SetSettings(applied)
		}
		if applied.Language != settings.Language && trayManager != nil {
			trayManager.SetLanguage(applied.Language)
		}
		settings = applied
		setGhostMode(applied.GhostMode)
		saveUI()
	}, func() {
		nav.CloseSettings()
		render()
	})

	cubeWindow = cube.New(fyneApp, form.Content(), cube.Actions{
		Toggle: func() {
			nav.Toggle()
			render()
		},
		Reset: func() {
			keeper.Reset()
			render()
		},
		Rotate: func(direction faces.Direction) {
			if nav.SettingsOpen() {
				form.SetSettings(settings)
			}
			nav.Rotate(direction)
			render()
		},
		ToggleGhost: func() {
			setGhostMode(!settings.GhostMode)
			form.SetSettings(settings)
			saveUI()
		},
	})
	defer cubeWindow.Close()

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnToggle: func() {
				nav.Toggle()
				render()
			},
			OnReset: func() {
				keeper.Reset()
				render()
			},
			OnGhostMode: func() {
				setGhostMode(!settings.GhostMode)
				form.SetSettings(settings)
				saveUI()
			},
			OnSettings: openSettings,
			OnShow:     cubeWindow.Show,
			OnQuit:     fyneApp.Quit,
		})
		trayManager.SetIcons(resources.MustIcon(resources.ActiveIcon), resources.MustIcon(resources.PausedIcon))
		trayManager.SetLanguage(settings.Language)
		trayManager.SetSnapshot(keeper.Snapshot())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	guard.OnActivate(cubeWindow.Activate)

	events := keeper.Subscribe(widgetEventBuffer)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				cubeWindow.Render(cube.NewView(snapshot, nav.Follow(snapshot), settings.Language))
				if trayManager != nil {
					trayManager.SetSnapshot(snapshot)
				}
			})
		}
	}()

	setGhostMode(settings.GhostMode)
	render()
	cubeWindow.Show()
	fyneApp.Run()
	return nil
}

// applyLaunchAtLogin registers or removes the login item when updated changes
// it. On failure the previous choice is kept in the returned settings.
func applyLaunchAtLogin(service platform.Service, current, updated preferences.Settings) preferences.Settings {
	if updated.LaunchAtLogin == current.LaunchAtLogin {
		return updated
	}
	if err := platform.ApplyAutostart(service, appName, updated.LaunchAtLogin); err != nil {
		log.Printf("autostart: %v", err)
		updated.LaunchAtLogin = current.LaunchAtLogin
	}
	return updated
}
