package engine

import (
	"ChargeSim/internal/behaviour"
	"ChargeSim/internal/logger"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

var refreshRate time.Duration = time.Second / 72 // headset frame rate

// Engine drives a scene from host ticks. Host input arrives as posted events
// that are drained at the start of the next frame, so all scene mutation
// happens on the goroutine calling Tick.
type Engine struct {
	Scene *behaviour.ComponentManager

	// TimeScale scales Delta and Now; unscaled time is untouched.
	TimeScale float64
	// FixedEvery runs FixedUpdate every N frames.
	FixedEvery int

	mu     sync.Mutex
	events []func()

	clock           behaviour.Time
	frameTrackId    int
	onFrameCallback func(t behaviour.Time)
}

func NewEngine() *Engine {
	logger.Log.Info("Engine initializing...")
	return &Engine{
		Scene:      behaviour.NewComponentManager(),
		TimeScale:  1,
		FixedEvery: 2,
	}
}

// Post queues a host event (grab, release, socket changes). Safe for use from
// any goroutine.
func (e *Engine) Post(fn func()) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.events = append(e.events, fn)
	e.mu.Unlock()
}

// Pending is the number of queued events.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}

func (e *Engine) drain() []func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := e.events
	e.events = nil
	return out
}

// Time returns the clock of the last frame.
func (e *Engine) Time() behaviour.Time {
	return e.clock
}

// Tick advances one frame of dt real time.
func (e *Engine) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	scaled := time.Duration(float64(dt) * e.TimeScale)

	e.clock.Frame++
	e.clock.UnscaledDelta = dt
	e.clock.UnscaledNow += dt
	e.clock.Delta = scaled
	e.clock.Now += scaled
	t := e.clock

	e.Scene.Coroutines().SetTime(t)
	for _, fn := range e.drain() {
		fn()
	}

	if e.FixedEvery > 0 && e.frameTrackId >= e.FixedEvery {
		e.Scene.FixedUpdateAll(t)
		e.frameTrackId = 0
	}
	e.Scene.UpdateAll(t)

	if e.onFrameCallback != nil {
		e.onFrameCallback(t)
	}
	e.frameTrackId++
}

// SetOnFrameCallback sets a callback that runs after every frame (HUD drawing etc.)
func (e *Engine) SetOnFrameCallback(callback func(t behaviour.Time)) {
	e.onFrameCallback = callback
}

// Run ticks at rate until ctx is done. A zero rate uses the default headset rate.
func (e *Engine) Run(ctx context.Context, rate time.Duration) error {
	if rate <= 0 {
		rate = refreshRate
	}
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	logger.Log.Info("Engine running", zap.Duration("frame", rate))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Engine stopped", zap.Uint64("frames", e.clock.Frame))
			return ctx.Err()
		case now := <-ticker.C:
			e.Tick(now.Sub(last))
			last = now
		}
	}
}
