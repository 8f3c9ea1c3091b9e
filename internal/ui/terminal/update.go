package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/model"
	"tatsu/internal/core/scheduler"
	"tatsu/internal/notify"
)

type eventMsg scheduler.Event

type eventsClosedMsg struct{}

type bannerExpiredMsg struct {
	id uuid.UUID
}

func waitForEvent(events <-chan scheduler.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func ringBell(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKey(msg, m)

	case eventMsg:
		event := scheduler.Event(msg)
		m.snapshot = event.Snapshot
		next := waitForEvent(m.events)
		switch event.Type {
		case scheduler.EventNotification:
			m.banner = &banner{id: event.ID, kind: event.Kind, text: notify.FloatingMessage(event.Kind)}
			id := event.ID
			expire := tea.Tick(m.options.BannerDuration, func(_ time.Time) tea.Msg {
				return bannerExpiredMsg{id: id}
			})
			return m, tea.Batch(next, ringBell(m.options.Bell), expire)
		case scheduler.EventIdleError:
			m.errMessage = event.Message
		}
		return m, next

	case bannerExpiredMsg:
		if m.banner != nil && m.banner.id == msg.id {
			m.banner = nil
		}
		return m, nil

	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func handleKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.controller.TogglePause()
		m.errMessage = ""

	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
		m.errMessage = ""

	case key.Matches(msg, m.keys.Standing):
		minutes := nextPreset(model.StandingPresets, m.snapshot.StandingInterval/60)
		m.errMessage = m.applyInterval(m.controller.SetStandingMinutes(minutes))

	case key.Matches(msg, m.keys.Walk):
		minutes := nextPreset(model.WalkPresets, m.snapshot.WalkInterval/60)
		m.errMessage = m.applyInterval(m.controller.SetWalkMinutes(minutes))

	default:
		return m, nil
	}

	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func (m Model) applyInterval(err error) string {
	if err != nil {
		log.Debug().Err(err).Msg("interval change rejected")
		return err.Error()
	}
	if m.options.OnIntervalsChanged == nil {
		return ""
	}
	snapshot := m.controller.Snapshot()
	if err := m.options.OnIntervalsChanged(snapshot.StandingInterval/60, snapshot.WalkInterval/60); err != nil {
		log.Warn().Err(err).Msg("persist intervals")
		return fmt.Sprintf("保存に失敗しました: %v", err)
	}
	return ""
}

// nextPreset returns the preset after current, wrapping around. Unknown values
// start from the first preset.
func nextPreset(presets []int, current int) int {
	for i, minutes := range presets {
		if minutes == current {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}
