// Package scheduler owns the reminder timer and drives it from a clock ticker.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/model"
	"tatsu/internal/core/phasetimer"
)

var (
	// ErrIdleUnsupported indicates idle detection is not available on this system.
	ErrIdleUnsupported = errors.New("idle detection unsupported")
	// ErrInvalidInterval is returned when an interval change would break standing < walk.
	ErrInvalidInterval = errors.New("invalid interval")
)

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// IdlePolicy restarts the cycle when the user has been away from the desk.
type IdlePolicy struct {
	Enabled       bool
	ResetAfter    time.Duration
	CheckInterval time.Duration
}

// Config contains runtime options for Scheduler.
type Config struct {
	TickInterval time.Duration
	Clock        clockwork.Clock
	Idle         IdlePolicy
}

// Scheduler serializes every access to a phasetimer.Timer and fans its
// callbacks out to subscribers.
type Scheduler struct {
	mu            sync.Mutex
	timer         *phasetimer.Timer
	options       Config
	idleChecker   IdleChecker
	lastIdleCheck time.Time
	away          bool
	events        []chan Event
	stopCh        chan struct{}
	doneCh        chan struct{}
	running       bool
}

// New creates a Scheduler for the given cycle.
func New(config model.TimerConfig, options Config) *Scheduler {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	options.Idle = normalizeIdle(options.Idle)

	scheduler := &Scheduler{options: options}
	standing, walk := config.Seconds()
	scheduler.timer = phasetimer.New(standing, walk, timerObserver{scheduler: scheduler})
	return scheduler
}

func normalizeIdle(policy IdlePolicy) IdlePolicy {
	if policy.ResetAfter <= 0 {
		policy.ResetAfter = 5 * time.Minute
	}
	if policy.CheckInterval <= 0 {
		policy.CheckInterval = 5 * time.Second
	}
	return policy
}

// SetIdleChecker injects an idle checker.
func (scheduler *Scheduler) SetIdleChecker(checker IdleChecker) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.idleChecker = checker
}

// SetIdleResetEnabled turns the idle policy on or off.
func (scheduler *Scheduler) SetIdleResetEnabled(enabled bool) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.options.Idle.Enabled = enabled
	if !enabled {
		scheduler.away = false
	}
}

// Subscribe registers a new observer channel.
func (scheduler *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	scheduler.mu.Lock()
	scheduler.events = append(scheduler.events, ch)
	scheduler.mu.Unlock()
	return ch
}

// Start launches the ticking loop. The loop ends on Stop or when ctx is done.
func (scheduler *Scheduler) Start(ctx context.Context) {
	scheduler.mu.Lock()
	if scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	scheduler.running = true
	scheduler.lastIdleCheck = time.Time{}
	scheduler.away = false
	scheduler.stopCh = make(chan struct{})
	scheduler.doneCh = make(chan struct{})
	ticker := scheduler.options.Clock.NewTicker(scheduler.options.TickInterval)
	stopCh, doneCh := scheduler.stopCh, scheduler.doneCh
	scheduler.emitLocked(scheduler.newEventLocked(EventStateChange))
	scheduler.mu.Unlock()

	log.Debug().Dur("interval", scheduler.options.TickInterval).Msg("scheduler started")
	go scheduler.run(ctx, ticker, stopCh, doneCh)
}

// Stop terminates the ticking loop and closes observers.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	if !scheduler.running {
		scheduler.mu.Unlock()
		return
	}
	close(scheduler.stopCh)
	scheduler.running = false
	doneCh := scheduler.doneCh
	events := scheduler.events
	scheduler.events = nil
	scheduler.mu.Unlock()

	<-doneCh
	for _, ch := range events {
		close(ch)
	}
	log.Debug().Msg("scheduler stopped")
}

// TogglePause pauses or resumes the cycle.
func (scheduler *Scheduler) TogglePause() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.timer.TogglePause()
	log.Info().Bool("paused", scheduler.timer.Paused()).Msg("pause toggled")
}

// Reset restarts the cycle.
func (scheduler *Scheduler) Reset() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	scheduler.timer.Reset()
	log.Info().Msg("cycle reset")
}

// SetStandingMinutes changes the standing interval and restarts the cycle.
func (scheduler *Scheduler) SetStandingMinutes(minutes int) error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	standing := minutes * 60
	walk := scheduler.timer.WalkInterval()
	if minutes <= 0 {
		return fmt.Errorf("%w: standing interval must be positive, got %d minutes", ErrInvalidInterval, minutes)
	}
	if !phasetimer.IsValidStandingInterval(standing, walk) {
		return fmt.Errorf("%w: standing interval %d min must be shorter than walk interval %s",
			ErrInvalidInterval, minutes, time.Duration(walk)*time.Second)
	}
	scheduler.applyLocked(standing, walk)
	return nil
}

// SetWalkMinutes changes the walk interval and restarts the cycle.
func (scheduler *Scheduler) SetWalkMinutes(minutes int) error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	standing := scheduler.timer.StandingInterval()
	walk := minutes * 60
	if minutes <= 0 {
		return fmt.Errorf("%w: walk interval must be positive, got %d minutes", ErrInvalidInterval, minutes)
	}
	if !phasetimer.IsValidWalkInterval(walk, standing) {
		return fmt.Errorf("%w: walk interval %d min must be longer than standing interval %s",
			ErrInvalidInterval, minutes, time.Duration(standing)*time.Second)
	}
	scheduler.applyLocked(standing, walk)
	return nil
}

// ApplyConfig replaces both intervals and restarts the cycle.
func (scheduler *Scheduler) ApplyConfig(config model.TimerConfig) error {
	standing, walk := config.Seconds()
	if standing <= 0 || walk <= 0 {
		return fmt.Errorf("%w: intervals must be positive, got %s/%s",
			ErrInvalidInterval, config.StandingInterval, config.WalkInterval)
	}
	if !phasetimer.IsValidStandingInterval(standing, walk) {
		return fmt.Errorf("%w: standing interval %s must be shorter than walk interval %s",
			ErrInvalidInterval, config.StandingInterval, config.WalkInterval)
	}

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if standing == scheduler.timer.StandingInterval() && walk == scheduler.timer.WalkInterval() {
		return nil
	}
	scheduler.applyLocked(standing, walk)
	return nil
}

// Config returns the active intervals.
func (scheduler *Scheduler) Config() model.TimerConfig {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return model.TimerConfig{
		StandingInterval: time.Duration(scheduler.timer.StandingInterval()) * time.Second,
		WalkInterval:     time.Duration(scheduler.timer.WalkInterval()) * time.Second,
	}
}

// Snapshot returns the current timer state.
func (scheduler *Scheduler) Snapshot() phasetimer.Snapshot {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.timer.Snapshot()
}

func (scheduler *Scheduler) applyLocked(standing, walk int) {
	scheduler.timer.ApplyIntervals(standing, walk)
	log.Info().Int("standing_seconds", standing).Int("walk_seconds", walk).Msg("intervals applied")
	scheduler.timer.Reset()
}

func (scheduler *Scheduler) run(ctx context.Context, ticker clockwork.Ticker, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		case tickTime := <-ticker.Chan():
			scheduler.tick(tickTime)
		}
	}
}

func (scheduler *Scheduler) tick(tickTime time.Time) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	if !scheduler.running {
		return
	}
	if scheduler.timer.Paused() {
		scheduler.timer.Tick()
		return
	}
	if scheduler.handleIdleCheckLocked(tickTime) {
		return
	}
	scheduler.timer.Tick()
}

// handleIdleCheckLocked reports whether the user is away; ticks are held while away.
func (scheduler *Scheduler) handleIdleCheckLocked(now time.Time) bool {
	policy := scheduler.options.Idle
	if !policy.Enabled || scheduler.idleChecker == nil {
		return false
	}
	if !scheduler.lastIdleCheck.IsZero() && now.Sub(scheduler.lastIdleCheck) < policy.CheckInterval {
		return scheduler.away
	}
	scheduler.lastIdleCheck = now

	idleDuration, err := scheduler.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			scheduler.options.Idle.Enabled = false
		}
		log.Warn().Err(err).Msg("idle check failed")
		event := scheduler.newEventLocked(EventIdleError)
		event.Message = err.Error()
		scheduler.emitLocked(event)
		scheduler.away = false
		return false
	}

	if idleDuration < policy.ResetAfter {
		if scheduler.away {
			log.Info().Dur("idle", idleDuration).Msg("activity resumed")
		}
		scheduler.away = false
		return false
	}
	if scheduler.away {
		return true
	}

	scheduler.away = true
	scheduler.timer.Reset()
	log.Info().Dur("idle", idleDuration).Msg("user away, cycle reset")
	event := scheduler.newEventLocked(EventIdleReset)
	event.Message = "idle reset"
	scheduler.emitLocked(event)
	return true
}

func (scheduler *Scheduler) newEventLocked(eventType EventType) Event {
	return Event{
		Type:     eventType,
		Snapshot: scheduler.timer.Snapshot(),
		At:       scheduler.options.Clock.Now(),
	}
}

func (scheduler *Scheduler) emitLocked(event Event) {
	for _, ch := range scheduler.events {
		select {
		case ch <- event:
		default:
			log.Debug().Str("type", string(event.Type)).Msg("subscriber full, event dropped")
		}
	}
}

// timerObserver forwards timer callbacks; it only runs while the scheduler lock is held.
type timerObserver struct {
	scheduler *Scheduler
}

func (observer timerObserver) NotificationRequested(kind phasetimer.NotificationKind) {
	scheduler := observer.scheduler
	event := scheduler.newEventLocked(EventNotification)
	event.Kind = kind
	event.ID = uuid.New()
	log.Info().
		Str("kind", kind.String()).
		Int("elapsed", event.Snapshot.Elapsed).
		Str("id", event.ID.String()).
		Msg("notification requested")
	scheduler.emitLocked(event)
}

func (observer timerObserver) StateChanged() {
	scheduler := observer.scheduler
	scheduler.emitLocked(scheduler.newEventLocked(EventStateChange))
}
