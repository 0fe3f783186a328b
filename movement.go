package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wolfcast/internal/engine"
)

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoWalkFrameCount = 0
}

// movementIntent selects either manual or automatic input. done reports
// that a scripted walk which should end the run has finished.
func (g *Game) movementIntent() (in engine.Intent, done bool) {
	if g.autoWalk {
		if time.Now().After(g.autoWalkDeadline) {
			g.autoWalk = false
			return engine.Intent{}, g.quitAfterAutoWalk
		}
		return g.autoWalkIntent(), false
	}
	return g.manualIntent(), false
}

// manualIntent reads WASD and the arrow keys, right-drag mouse look, and
// space or left click to fire.
func (g *Game) manualIntent() engine.Intent {
	var in engine.Intent
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	if in.Forward != 0 && in.Strafe != 0 {
		in.Forward *= 0.7071
		in.Strafe *= 0.7071
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.Rotation += g.cfg.RotationSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyE) {
		in.Rotation -= g.cfg.RotationSpeed
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, _ := ebiten.CursorPosition()
		if g.dragging {
			in.Rotation -= float64(x-g.lastCursorX) * mouseSensitivity
		}
		g.lastCursorX = x
		g.dragging = true
	} else {
		g.dragging = false
	}

	in.Fire = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return in
}

// autoWalkIntent walks forward on a slowly curving path, picking a new
// turn rate whenever the player stops moving or the current leg ends.
func (g *Game) autoWalkIntent() engine.Intent {
	pos := g.engine.Player().Pos
	if g.autoWalkFrameCount <= 0 || pos == g.autoWalkLastPos {
		g.randomizeAutoWalkTurn()
	}
	g.autoWalkLastPos = pos
	g.autoWalkFrameCount--
	return engine.Intent{
		Forward:  1,
		Rotation: g.autoWalkTurn,
		Fire:     g.autoWalkRand.Intn(90) == 0,
	}
}

// randomizeAutoWalkTurn chooses a new turn rate and leg length.
func (g *Game) randomizeAutoWalkTurn() {
	if g.autoWalkRand == nil {
		g.autoWalkRand = rand.New(rand.NewSource(time.Now().UnixNano() + 5))
	}
	g.autoWalkTurn = (g.autoWalkRand.Float64()*2 - 1) * g.cfg.RotationSpeed
	if g.autoWalkRand.Intn(4) == 0 {
		// Sharp turn away from whatever stopped us.
		g.autoWalkTurn = math.Copysign(math.Pi/8, g.autoWalkTurn)
	}
	g.autoWalkFrameCount = 20 + g.autoWalkRand.Intn(50)
}

// handleDebugControls processes overlay and pause hotkeys.
func (g *Game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.userPaused = !g.userPaused
	}
}
