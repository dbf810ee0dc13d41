package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains flash timing values.
type Config struct {
	Flashes     int
	OnDuration  time.Duration
	OffDuration time.Duration
}

// Engine blinks a highlight on and off. Only one flash runs at a time.
type Engine struct {
	mu           sync.Mutex
	config       Config
	setHighlight func(bool)
	cancel       context.CancelFunc
	done         chan struct{}
}

// New creates a new flash engine.
func New(config Config, setHighlight func(bool)) *Engine {
	if config.Flashes <= 0 {
		config.Flashes = DefaultConfig().Flashes
	}
	return &Engine{
		config:       config,
		setHighlight: setHighlight,
	}
}

// Flash starts a new flash sequence, replacing any running one.
// The returned channel is closed once the highlight is off again.
func (engine *Engine) Flash(ctx context.Context) <-chan struct{} {
	return engine.start(ctx, func(runCtx context.Context) {
		for i := 0; i < engine.config.Flashes; i++ {
			engine.setHighlight(true)
			if !sleepWithContext(runCtx, engine.config.OnDuration) {
				return
			}
			engine.setHighlight(false)
			if !sleepWithContext(runCtx, engine.config.OffDuration) {
				return
			}
		}
	})
}

// Stop terminates any active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) <-chan struct{} {
	engine.Stop()

	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	engine.mu.Lock()
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		defer engine.setHighlight(false)
		run(runCtx)
	}()
	return done
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
