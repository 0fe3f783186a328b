package assets

import (
	"fmt"
	"math/rand"

	"wolfcast/internal/engine"
)

// GenerateOptions controls procedural level generation. Walls are laid as
// straight segments of random length and thickness; no wall lands within
// ExclusionRadius tiles of the spawn.
type GenerateOptions struct {
	Width, Height     int
	Segments          int
	MinLen, MaxLen    int
	ThicknessVariance int
	ExclusionRadius   int
	Seed              int64
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:             32,
		Height:            32,
		Segments:          14,
		MinLen:            3,
		MaxLen:            12,
		ThicknessVariance: 0,
		ExclusionRadius:   2,
		Seed:              1,
	}
}

// Generate builds a bordered level with the spawn at its centre. The same
// options always give the same level.
func Generate(opts GenerateOptions) (*Level, error) {
	w, h := opts.Width, opts.Height
	if w < 5 || h < 5 {
		return nil, fmt.Errorf("%w: generator needs 5x5, got %dx%d", ErrLevelTooSmall, w, h)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	spawn := engine.Vec2{X: float64(w/2) + 0.5, Y: float64(h/2) + 0.5}

	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				rows[y][x] = 1
			}
		}
	}

	setWall := func(x, y, wallType int) {
		if x <= 1 || x >= w-1 || y <= 1 || y >= h-1 {
			return
		}
		dx := float64(x) + 0.5 - spawn.X
		dy := float64(y) + 0.5 - spawn.Y
		if r := float64(opts.ExclusionRadius); dx*dx+dy*dy < r*r {
			return
		}
		rows[y][x] = wallType
	}

	lengthRange := opts.MaxLen - opts.MinLen + 1
	if lengthRange <= 0 {
		lengthRange = 1
	}
	for s := 0; s < opts.Segments; s++ {
		length := opts.MinLen + rng.Intn(lengthRange)
		thickness := 0
		if opts.ThicknessVariance > 0 {
			thickness = rng.Intn(opts.ThicknessVariance + 1)
		}
		wallType := 1 + rng.Intn(len(Palette))
		dx, dy := 0, 1
		if rng.Intn(2) == 0 {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		cx, cy := rng.Intn(w-4)+2, rng.Intn(h-4)+2
		for l := 0; l < length; l++ {
			if cx <= 1 || cx >= w-1 || cy <= 1 || cy >= h-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				setWall(cx+perpX*t, cy+perpY*t, wallType)
			}
			cx += dx
			cy += dy
		}
	}

	m, err := engine.NewMap(rows)
	if err != nil {
		return nil, err
	}
	return &Level{Map: m, Spawn: spawn, HasSpawn: true}, nil
}
