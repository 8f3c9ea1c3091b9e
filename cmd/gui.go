package main

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/scheduler"
	"tatsu/internal/notify"
	"tatsu/internal/platform"
	"tatsu/internal/ui/animation"
	"tatsu/internal/ui/overlay"
	"tatsu/internal/ui/preferences"
	"tatsu/internal/ui/tray"
	"tatsu/resources"
)

func runGUI(ctx context.Context, sess *session, guard *platform.InstanceGuard) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fyneApp := app.NewWithID("com.tatsu.app")
	fyneApp.SetIcon(resources.MustIcon(sess.scheduler.Snapshot().SymbolName))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("TATSU はシステムトレイで動作しています。"))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settings := sess.Settings()
	overlayWindow := overlay.New(fyneApp, settings.CharacterImagePath, animation.DefaultConfig())
	notifier := notify.New(fyneApp)

	var trayManager *tray.Manager
	var prefsWindow *preferences.Window

	// onSettingsChanged runs on the UI goroutine.
	onSettingsChanged := func(previous, updated preferences.Settings) {
		trayManager.SetIntervals(updated.StandingMinutes(), updated.WalkMinutes())
		if previous.CharacterImagePath != updated.CharacterImagePath {
			go func() {
				if err := overlayWindow.SetImage(updated.CharacterImagePath); err != nil {
					log.Warn().Err(err).Msg("character image")
				}
			}()
		}
	}

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) error {
		previous, err := sess.applySettings(updated, true)
		if err != nil {
			return err
		}
		onSettingsChanged(previous, updated)
		return nil
	})

	onIntervalResult := func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("interval change rejected")
			fyneApp.SendNotification(fyne.NewNotification(appName, err.Error()))
		}
		current := sess.Settings()
		trayManager.SetIntervals(current.StandingMinutes(), current.WalkMinutes())
		prefsWindow.UpdateSettings(current)
	}

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnTogglePause: sess.scheduler.TogglePause,
		OnReset:       sess.scheduler.Reset,
		OnStandingInterval: func(minutes int) {
			onIntervalResult(sess.changeStanding(minutes))
		},
		OnWalkInterval: func(minutes int) {
			onIntervalResult(sess.changeWalk(minutes))
		},
		OnPreferences: func() {
			prefsWindow.UpdateSettings(sess.Settings())
			prefsWindow.Show()
		},
		OnQuit: func() {
			overlayWindow.Close()
			fyneApp.Quit()
		},
	}, sess.scheduler.Snapshot())

	guard.OnActivate(func() {
		fyne.Do(func() {
			prefsWindow.UpdateSettings(sess.Settings())
			prefsWindow.Show()
		})
	})

	events := sess.scheduler.Subscribe(16)
	go func() {
		for event := range events {
			switch event.Type {
			case scheduler.EventNotification:
				notifier.Handle(event)
				overlayWindow.Show(event.Kind)
			case scheduler.EventIdleReset:
				log.Info().Msg("cycle restarted after idle")
			}
			snapshot := event.Snapshot
			fyne.Do(func() {
				trayManager.Update(snapshot)
			})
		}
	}()

	if sess.store != nil {
		err := sess.store.Watch(ctx, func(updated preferences.Settings, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("reload settings")
				return
			}
			previous, err := sess.applySettings(updated, false)
			if err != nil {
				log.Warn().Err(err).Msg("apply reloaded settings")
				return
			}
			fyne.Do(func() {
				onSettingsChanged(previous, updated)
				prefsWindow.UpdateSettings(updated)
			})
		})
		if err != nil {
			log.Warn().Err(err).Msg("settings hot reload disabled")
		}
	}

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	sess.scheduler.Start(ctx)
	defer sess.scheduler.Stop()

	fyneApp.Run()
	return nil
}
