package main

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"wolfcast/internal/assets"
	"wolfcast/internal/engine"
)

// displayCadence ticks the engine from ebiten's Update, so frames follow
// the display's update rate.
type displayCadence struct {
	mu   sync.Mutex
	tick func(now time.Time)
}

func (c *displayCadence) Start(tick func(now time.Time)) {
	c.mu.Lock()
	c.tick = tick
	c.mu.Unlock()
}

func (c *displayCadence) Stop() {
	c.mu.Lock()
	c.tick = nil
	c.mu.Unlock()
}

func (c *displayCadence) step(now time.Time) {
	c.mu.Lock()
	tick := c.tick
	c.mu.Unlock()
	if tick != nil {
		tick(now)
	}
}

// Game adapts the engine to ebiten: input becomes intents, finished frames
// are copied into pixels for Draw.
type Game struct {
	cfg      engine.Config
	level    *assets.Level
	engine   *engine.Engine
	renderer *engine.Renderer
	cadence  displayCadence
	intents  chan engine.Intent
	pixels   []byte
	shot     *shotSound

	showDebug   bool
	showMinimap bool
	userPaused  bool
	paused      bool
	minimapBase *ebiten.Image

	dragging    bool
	lastCursorX int

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkTurn       float64
	autoWalkFrameCount int
	autoWalkLastPos    engine.Vec2
	quitAfterAutoWalk  bool
}

// newGame constructs a Game with a running engine.
func newGame(cfg engine.Config, level *assets.Level, textures *engine.TextureManager) (*Game, error) {
	renderer, err := engine.NewRenderer(cfg, textures)
	if err != nil {
		return nil, err
	}
	shot, err := newShotSound(*shotSoundFlag)
	if err != nil {
		log.Printf("Shot sound disabled: %v", err)
	}
	g := &Game{
		cfg:         cfg,
		level:       level,
		renderer:    renderer,
		intents:     make(chan engine.Intent, 8),
		pixels:      make([]byte, cfg.ScreenWidth*cfg.ScreenHeight*4),
		shot:        shot,
		showDebug:   *debugFlag,
		showMinimap: *minimapFlag,
	}

	state := engine.NewGameState(cfg.NewPlayer(), level.Map)
	state.AddObserver(engine.ObserverFunc(func(s *engine.GameState) {
		log.Printf("Game %s", s.Status())
	}))
	g.engine = engine.NewEngine(state, renderer, &g.cadence, g.intents, engine.Hooks{
		Frame: func(fb *engine.FrameBuffer) { fb.WriteRGBA(g.pixels) },
		Fired: g.shot.Play,
	})
	return g, nil
}

// Update turns input into an intent and runs one engine tick.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleDebugControls()
	g.updatePause()

	in, done := g.movementIntent()
	if done {
		return ebiten.Termination
	}
	engine.SendIntent(g.intents, in)
	g.cadence.step(time.Now())
	return nil
}

// updatePause pauses the engine while the window is unfocused or the
// player asked for it.
func (g *Game) updatePause() {
	paused := g.userPaused || !ebiten.IsFocused()
	if paused != g.paused {
		g.paused = paused
		g.engine.SetPaused(paused)
	}
}

func (g *Game) close() {
	g.engine.Stop()
	g.renderer.Close()
}

// runDesktop opens the window and blocks until it is closed.
func runDesktop(cfg engine.Config, level *assets.Level, textures *engine.TextureManager) error {
	g, err := newGame(cfg, level, textures)
	if err != nil {
		return err
	}
	defer g.close()

	if *recordDefaultPGO {
		prof, err := startCPUProfile("default.pgo")
		if err != nil {
			return err
		}
		defer prof.Stop()
		g.enableAutoWalk(pgoRecordDuration)
		g.quitAfterAutoWalk = true
		log.Printf("Recording default.pgo for %s", pgoRecordDuration)
	}

	scale := max(*scaleFlag, 1)
	ebiten.SetWindowSize(cfg.ScreenWidth*scale, cfg.ScreenHeight*scale)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	ebiten.SetRunnableOnUnfocused(true)

	g.engine.Start()
	return ebiten.RunGame(g)
}
