package terminal

import (
	"fmt"
	"strings"

	"tatsu/internal/core/phasetimer"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := Current.Title
	if m.snapshot.Paused {
		title = Current.Paused
	}
	b.WriteString(title.Render("TATSU  " + m.snapshot.DisplayTitle))
	b.WriteString("\n\n")
	b.WriteString(Current.State.Render(m.snapshot.MenuStateText))
	b.WriteString("\n")
	b.WriteString(Current.Timer.Render(m.snapshot.MenuTimerText))
	b.WriteString("\n")
	b.WriteString(Current.Settings.Render(fmt.Sprintf("スタンディング %d分 / 散歩 %d分",
		m.snapshot.StandingInterval/60, m.snapshot.WalkInterval/60)))
	b.WriteString("\n")

	if m.banner != nil {
		style := Current.Standing
		if m.banner.kind == phasetimer.NotifyWalk {
			style = Current.Walk
		}
		b.WriteString("\n")
		b.WriteString(style.Render(m.banner.text))
		b.WriteString("\n")
	}

	if m.errMessage != "" {
		b.WriteString("\n")
		b.WriteString(Current.Error.Render(m.errMessage))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Current.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}
