package engine

import (
	"math"
	"sync"
	"time"
)

// Intent is one sample of player input. Forward and Strafe are normalised
// to [-1,1] and replace the held movement; Rotation is radians and
// accumulates until the next tick.
type Intent struct {
	Forward  float64
	Strafe   float64
	Rotation float64
	Fire     bool
}

// SendIntent offers in to ch without blocking and reports whether it was
// queued.
func SendIntent(ch chan<- Intent, in Intent) bool {
	select {
	case ch <- in:
		return true
	default:
		return false
	}
}

// Hooks are the engine's outbound notifications. They run synchronously on
// the ticking goroutine while the engine is locked, so they must not call
// back into the Engine. Any hook may be nil.
type Hooks struct {
	// Frame receives the finished frame. The buffer is reused by the next
	// tick and must be consumed before Frame returns.
	Frame   func(fb *FrameBuffer)
	Started func()
	Stopped func()
	// Fired runs when a shot starts.
	Fired func()
}

// Stats is a snapshot of loop counters.
type Stats struct {
	Status Status
	Frames uint64
	FPS    int
}

// Engine runs the per-frame loop: drain input, move with collision, advance
// the weapon, render, publish.
type Engine struct {
	mu       sync.Mutex
	state    *GameState
	renderer *Renderer
	collider CollisionDetector
	cadence  Cadence
	intents  <-chan Intent
	hooks    Hooks

	running bool
	paused  bool

	forward  float64
	strafe   float64
	rotation float64

	fpsWindow time.Time
	fpsFrames int
	fps       int
}

// NewEngine wires an engine. cadence may be nil when the caller drives Tick
// itself; intents may be nil when there is no input.
func NewEngine(state *GameState, renderer *Renderer, cadence Cadence, intents <-chan Intent, hooks Hooks) *Engine {
	return &Engine{
		state:    state,
		renderer: renderer,
		cadence:  cadence,
		intents:  intents,
		hooks:    hooks,
	}
}

// Start marks the game running and arms the cadence. It is a no-op when
// already running.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.paused = false
	e.state.LastUpdate = time.Time{}
	e.state.SetStatus(StatusRunning)
	e.mu.Unlock()

	if e.cadence != nil {
		e.cadence.Start(e.Tick)
	}
	Logger().Info("engine started")
	if e.hooks.Started != nil {
		e.hooks.Started()
	}
}

// Stop marks the game stopped and disarms the cadence. It is a no-op when
// not running.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	e.paused = false
	e.state.SetStatus(StatusStopped)
	frames := e.state.FrameCount
	e.mu.Unlock()

	if e.cadence != nil {
		e.cadence.Stop()
	}
	Logger().Info("engine stopped", "frames", frames)
	if e.hooks.Stopped != nil {
		e.hooks.Stopped()
	}
}

func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// SetPaused suspends or resumes ticking of a running engine. Input that
// arrives while paused is discarded.
func (e *Engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running || e.paused == paused {
		return
	}
	e.paused = paused
	if paused {
		e.state.SetStatus(StatusPaused)
		Logger().Info("engine paused")
		return
	}
	// Resume without a delta spanning the pause.
	e.state.LastUpdate = time.Time{}
	e.state.SetStatus(StatusRunning)
	Logger().Info("engine resumed")
}

// SetRenderer replaces the renderer used from the next tick on and
// returns the previous one, which the caller now owns.
func (e *Engine) SetRenderer(r *Renderer) *Renderer {
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.renderer
	e.renderer = r
	return old
}

// Shoot starts a shot outside the intent channel.
func (e *Engine) Shoot() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fire()
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{Status: e.state.Status(), Frames: e.state.FrameCount, FPS: e.fps}
}

// Player returns a copy of the current player pose.
func (e *Engine) Player() Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Player
}

// Tick runs one frame. Cadences call it; it is exported for callers that
// own the loop.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	if e.paused {
		e.discardIntents()
		e.forward, e.strafe, e.rotation = 0, 0, 0
		return
	}

	dt := 0.0
	if !e.state.LastUpdate.IsZero() {
		dt = math.Min(math.Max(now.Sub(e.state.LastUpdate).Seconds(), 0), maxFrameDelta)
	}
	e.state.LastUpdate = now
	e.state.FrameCount++

	e.drainIntents()
	e.applyMovement()
	e.state.Weapon.Update(dt)

	fb := e.renderer.Render(e.state.Player, e.state.Map, e.state.Weapon)
	if e.hooks.Frame != nil {
		e.hooks.Frame(fb)
	}
	e.countFrame(now)
}

func (e *Engine) drainIntents() {
	for {
		select {
		case in, ok := <-e.intents:
			if !ok {
				e.intents = nil
				return
			}
			e.forward, e.strafe = in.Forward, in.Strafe
			e.rotation += in.Rotation
			if in.Fire {
				e.fire()
			}
		default:
			return
		}
	}
}

// discardIntents empties the channel without acting on anything, shots
// included.
func (e *Engine) discardIntents() {
	for {
		select {
		case _, ok := <-e.intents:
			if !ok {
				e.intents = nil
				return
			}
		default:
			return
		}
	}
}

func (e *Engine) applyMovement() {
	p := &e.state.Player
	if math.Abs(e.rotation) > rotationDeadzone {
		p.Rotate(e.rotation)
	}
	e.rotation = 0

	if math.Abs(e.forward) <= movementDeadzone && math.Abs(e.strafe) <= movementDeadzone {
		return
	}
	proposed := p.Move(e.forward, e.strafe)
	p.UpdatePosition(e.collider.CheckMovement(p.Pos, proposed, e.state.Map))
}

func (e *Engine) fire() {
	if e.state.Weapon.StartShooting() && e.hooks.Fired != nil {
		e.hooks.Fired()
	}
}

func (e *Engine) countFrame(now time.Time) {
	if e.fpsWindow.IsZero() {
		e.fpsWindow = now
	}
	e.fpsFrames++
	if now.Sub(e.fpsWindow) >= time.Second {
		e.fps = e.fpsFrames
		Logger().Debug("frame rate", "fps", e.fps, "frames", e.state.FrameCount)
		e.fpsFrames = 0
		e.fpsWindow = now
	}
}
