package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains pulse timing values.
type Config struct {
	BrightDuration Range
	DimDuration    Range
}

// PulseSpec defines the two colors the indicator alternates between.
type PulseSpec struct {
	Bright color.Color
	Dim    color.Color
}

// Engine drives the running indicator pulse.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(color.Color)
	cancel  context.CancelFunc
	rng     *rand.Rand
	running bool
}

// New creates a new animation engine. update receives every color change.
func New(config Config, update func(color.Color)) *Engine {
	return &Engine{
		config: config,
		update: update,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse starts pulsing until ctx is cancelled or Stop is called.
// Calling it while a pulse runs restarts the pulse.
func (engine *Engine) StartPulse(ctx context.Context, spec PulseSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		for {
			engine.update(spec.Bright)
			if !sleepWithContext(runCtx, engine.random(engine.config.BrightDuration)) {
				return
			}
			engine.update(spec.Dim)
			if !sleepWithContext(runCtx, engine.random(engine.config.DimDuration)) {
				return
			}
		}
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.running = false
}

// Running reports whether a pulse is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.running = true
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) random(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
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
