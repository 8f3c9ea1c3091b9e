package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains fade timing values.
type Config struct {
	FadeDuration time.Duration
	FadeSteps    int
	HoldDuration time.Duration
}

// Engine fades a surface in, holds it, and fades it out again.
type Engine struct {
	mu       sync.Mutex
	config   Config
	setAlpha func(uint8)
	onHidden func()
	cancel   context.CancelFunc
}

// New creates a new fade engine. setAlpha receives every opacity step; onHidden
// runs once a presentation has fully faded out.
func New(config Config, setAlpha func(uint8), onHidden func()) *Engine {
	if config.FadeSteps <= 0 {
		config.FadeSteps = 1
	}
	return &Engine{
		config:   config,
		setAlpha: setAlpha,
		onHidden: onHidden,
	}
}

// Present starts a presentation from fully transparent, replacing any running one.
func (engine *Engine) Present(ctx context.Context) {
	engine.start(ctx, func(runCtx context.Context) {
		engine.setAlpha(0)
		if !engine.fade(runCtx, true) {
			return
		}
		if !sleepWithContext(runCtx, engine.config.HoldDuration) {
			return
		}
		if !engine.fade(runCtx, false) {
			return
		}
		if engine.onHidden != nil {
			engine.onHidden()
		}
	})
}

// Stop terminates any active presentation without fading out.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) fade(ctx context.Context, in bool) bool {
	steps := engine.config.FadeSteps
	stepDuration := engine.config.FadeDuration / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		if !sleepWithContext(ctx, stepDuration) {
			return false
		}
		level := i
		if !in {
			level = steps - i
		}
		engine.setAlpha(uint8(255 * level / steps))
	}
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
