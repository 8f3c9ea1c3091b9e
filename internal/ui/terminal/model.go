package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"tatsu/internal/core/phasetimer"
	"tatsu/internal/core/scheduler"
)

const defaultBannerDuration = 10 * time.Second

// Controller is the subset of scheduler.Scheduler the terminal drives.
type Controller interface {
	TogglePause()
	Reset()
	SetStandingMinutes(minutes int) error
	SetWalkMinutes(minutes int) error
	Snapshot() phasetimer.Snapshot
}

// Options configures the terminal frontend.
type Options struct {
	// OnIntervalsChanged runs after an interval change was accepted.
	OnIntervalsChanged func(standingMinutes, walkMinutes int) error
	// Bell receives the bell character on notifications. Defaults to stderr.
	Bell           io.Writer
	BannerDuration time.Duration
}

type banner struct {
	id   uuid.UUID
	kind phasetimer.NotificationKind
	text string
}

// Model is the bubbletea model of the terminal frontend.
type Model struct {
	controller Controller
	events     <-chan scheduler.Event
	options    Options
	keys       KeyMap
	help       help.Model
	snapshot   phasetimer.Snapshot
	banner     *banner
	errMessage string
	quitting   bool
}

// New creates a terminal model reading scheduler events from events.
func New(controller Controller, events <-chan scheduler.Event, options Options) Model {
	if options.Bell == nil {
		options.Bell = os.Stderr
	}
	if options.BannerDuration <= 0 {
		options.BannerDuration = defaultBannerDuration
	}
	return Model{
		controller: controller,
		events:     events,
		options:    options,
		keys:       DefaultKeys(),
		help:       help.New(),
		snapshot:   controller.Snapshot(),
	}
}

// Run starts the terminal program and blocks until it quits or ctx is done.
func Run(ctx context.Context, controller Controller, events <-chan scheduler.Event, options Options) error {
	program := tea.NewProgram(New(controller, events, options), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}

// Snapshot returns the last rendered timer state.
func (m Model) Snapshot() phasetimer.Snapshot {
	return m.snapshot
}
