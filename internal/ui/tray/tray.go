package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/model"
	"tatsu/internal/core/phasetimer"
	"tatsu/resources"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnTogglePause      func()
	OnReset            func()
	OnStandingInterval func(minutes int)
	OnWalkInterval     func(minutes int)
	OnPreferences      func()
	OnQuit             func()
}

// Manager handles system tray state.
type Manager struct {
	app           App
	menu          *fyne.Menu
	titleItem     *fyne.MenuItem
	stateItem     *fyne.MenuItem
	timerItem     *fyne.MenuItem
	pauseItem     *fyne.MenuItem
	standingItems map[int]*fyne.MenuItem
	walkItems     map[int]*fyne.MenuItem
	callbacks     Callbacks
	iconName      string
}

// New creates a tray manager with the provided callbacks and renders snapshot.
func New(app App, callbacks Callbacks, snapshot phasetimer.Snapshot) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.titleItem = fyne.NewMenuItem(snapshot.DisplayTitle, nil)
	manager.titleItem.Disabled = true
	manager.stateItem = fyne.NewMenuItem(snapshot.MenuStateText, nil)
	manager.stateItem.Disabled = true
	manager.timerItem = fyne.NewMenuItem(snapshot.MenuTimerText, nil)
	manager.timerItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem(snapshot.PauseMenuTitle, func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	reset := fyne.NewMenuItem("リセット", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	standing := fyne.NewMenuItem("スタンディング間隔", nil)
	standing.ChildMenu, manager.standingItems = presetMenu(model.StandingPresets, func(minutes int) {
		if manager.callbacks.OnStandingInterval != nil {
			manager.callbacks.OnStandingInterval(minutes)
		}
	})

	walk := fyne.NewMenuItem("散歩間隔", nil)
	walk.ChildMenu, manager.walkItems = presetMenu(model.WalkPresets, func(minutes int) {
		if manager.callbacks.OnWalkInterval != nil {
			manager.callbacks.OnWalkInterval(minutes)
		}
	})

	image := fyne.NewMenuItem("通知画像を選択...", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	quit := fyne.NewMenuItem("終了", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("TATSU",
		manager.titleItem,
		manager.stateItem,
		manager.timerItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		reset,
		fyne.NewMenuItemSeparator(),
		standing,
		walk,
		image,
		fyne.NewMenuItemSeparator(),
		quit,
	)

	manager.SetIntervals(snapshot.StandingInterval/60, snapshot.WalkInterval/60)
	manager.Update(snapshot)
	return manager
}

func presetMenu(presets []int, onSelect func(int)) (*fyne.Menu, map[int]*fyne.MenuItem) {
	items := make(map[int]*fyne.MenuItem, len(presets))
	menuItems := make([]*fyne.MenuItem, 0, len(presets))
	for _, minutes := range presets {
		minutes := minutes
		item := fyne.NewMenuItem(fmt.Sprintf("%d分", minutes), func() {
			onSelect(minutes)
		})
		items[minutes] = item
		menuItems = append(menuItems, item)
	}
	return fyne.NewMenu("", menuItems...), items
}

// Update renders a timer snapshot into the menu and icon.
func (manager *Manager) Update(snapshot phasetimer.Snapshot) {
	manager.titleItem.Label = snapshot.DisplayTitle
	manager.stateItem.Label = snapshot.MenuStateText
	manager.timerItem.Label = snapshot.MenuTimerText
	manager.pauseItem.Label = snapshot.PauseMenuTitle

	iconName := snapshot.SymbolName
	if snapshot.Paused {
		iconName = resources.PausedIcon
	}
	if iconName != manager.iconName {
		icon, err := resources.Icon(iconName)
		if err != nil {
			log.Warn().Err(err).Str("icon", iconName).Msg("tray icon unavailable")
		} else {
			manager.app.SetSystemTrayIcon(icon)
			manager.iconName = iconName
		}
	}

	manager.refreshMenu()
}

// SetIntervals moves the check marks to the active presets.
func (manager *Manager) SetIntervals(standingMinutes, walkMinutes int) {
	for minutes, item := range manager.standingItems {
		item.Checked = minutes == standingMinutes
	}
	for minutes, item := range manager.walkItems {
		item.Checked = minutes == walkMinutes
	}
	manager.refreshMenu()
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
