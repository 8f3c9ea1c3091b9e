// Package terminal renders the reminder cycle in a terminal.
package terminal

import "github.com/charmbracelet/lipgloss"

type colors struct {
	Subtle    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Standing  lipgloss.AdaptiveColor
	Walk      lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
}

var defaultColors = colors{
	Subtle:    lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
	Highlight: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"},
	Standing:  lipgloss.AdaptiveColor{Light: "#D9822B", Dark: "#F5A95B"},
	Walk:      lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"},
	Error:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF4040"},
}

// Style groups the lipgloss styles used by the view.
type Style struct {
	Title    lipgloss.Style
	Paused   lipgloss.Style
	State    lipgloss.Style
	Timer    lipgloss.Style
	Settings lipgloss.Style
	Standing lipgloss.Style
	Walk     lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyle returns the default style configuration.
func DefaultStyle() Style {
	base := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	banner := base.Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 2)

	return Style{
		Title:    base.Bold(true).Foreground(defaultColors.Highlight),
		Paused:   base.Bold(true).Foreground(defaultColors.Subtle),
		State:    base,
		Timer:    base.Foreground(defaultColors.Subtle),
		Settings: base.Foreground(defaultColors.Subtle),
		Standing: banner.Foreground(defaultColors.Standing).BorderForeground(defaultColors.Standing),
		Walk:     banner.Foreground(defaultColors.Walk).BorderForeground(defaultColors.Walk),
		Error:    base.Foreground(defaultColors.Error),
		Help:     base.Foreground(defaultColors.Subtle),
	}
}

// Current holds the active style configuration.
var Current = DefaultStyle()
