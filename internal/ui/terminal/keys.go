package terminal

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Pause    key.Binding
	Reset    key.Binding
	Standing key.Binding
	Walk     key.Binding
	Quit     key.Binding
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "一時停止/再開"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "リセット"),
		),
		Standing: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "スタンディング間隔"),
		),
		Walk: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "散歩間隔"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "終了"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Pause, keys.Reset, keys.Standing, keys.Walk, keys.Quit}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.Pause, keys.Reset}, {keys.Standing, keys.Walk}, {keys.Quit}}
}

var _ help.KeyMap = KeyMap{}
