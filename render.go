package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"wolfcast/internal/assets"
	"wolfcast/internal/engine"
)

var (
	minimapFloor  = color.RGBA{20, 20, 24, 220}
	minimapRay    = color.RGBA{255, 230, 120, 255}
	minimapPlayer = color.RGBA{0, 255, 200, 255}
	minimapFacing = color.RGBA{255, 60, 60, 255}
)

// Draw presents the last rendered frame plus the optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.pixels)

	if g.showMinimap {
		g.drawMinimap(screen)
	}
	if g.showDebug {
		stats := g.engine.Stats()
		p := g.engine.Player()
		debugMsg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  engine: %d fps\nFrame: %d (%s)\nPos: %.2f, %.2f  Dir: %.2f, %.2f\nStrips: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), stats.FPS,
			stats.Frames, stats.Status,
			p.Pos.X, p.Pos.Y, p.Dir.X, p.Dir.Y,
			g.cfg.StripCount)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.ScreenWidth, g.cfg.ScreenHeight }

// drawMinimap draws the level in the top right corner with the player and a
// fan of the rays the renderer casts.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	m := g.level.Map
	if g.minimapBase == nil {
		g.minimapBase = ebiten.NewImageFromImage(minimapImage(m))
	}
	ox := g.cfg.ScreenWidth - m.Width()*minimapCell - minimapMargin
	oy := minimapMargin
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(minimapCell, minimapCell)
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimapBase, op)

	toScreen := func(v engine.Vec2) (int, int) {
		return ox + int(v.X*minimapCell), oy + int(v.Y*minimapCell)
	}
	p := g.engine.Player()
	px, py := toScreen(p.Pos)
	for i := 0; i < minimapRays; i++ {
		screenX := i * (g.cfg.ScreenWidth - 1) / (minimapRays - 1)
		hit := g.renderer.CastRay(screenX, p, m)
		dist := math.Min(hit.WallDistance, float64(m.Width()+m.Height()))
		hx, hy := toScreen(p.Pos.Add(hit.RayDir.Scale(dist)))
		drawLine(screen, px, py, hx, hy, minimapRay)
	}
	fx, fy := toScreen(p.Pos.Add(p.Dir.Scale(1.5)))
	drawLine(screen, px, py, fx, fy, minimapFacing)
	fillDisc(screen, px, py, playerMarkerRad, minimapPlayer)
}

// fillDisc sets every pixel within r of (cx, cy).
func fillDisc(screen *ebiten.Image, cx, cy, r int, clr color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				screen.Set(cx+dx, cy+dy, clr)
			}
		}
	}
}

// minimapImage renders one pixel per tile in the level palette.
func minimapImage(m *engine.Map) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := minimapFloor
			if t := m.Tile(x, y); t > 0 {
				if pc, ok := assets.Palette[t]; ok {
					c = pc
				} else {
					c = assets.Palette[1]
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	b := screen.Bounds()
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(b) {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
