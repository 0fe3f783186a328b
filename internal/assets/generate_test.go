package assets

import (
	"errors"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 42
	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	b, _ := Generate(opts)
	ra, rb := a.Map.Rows(), b.Map.Rows()
	for y := range ra {
		for x := range ra[y] {
			if ra[y][x] != rb[y][x] {
				t.Fatalf("same seed differs at (%d,%d)", x, y)
			}
		}
	}

	opts.Seed = 43
	c, _ := Generate(opts)
	rc := c.Map.Rows()
	differs := false
	for y := range ra {
		for x := range ra[y] {
			if ra[y][x] != rc[y][x] {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("seeds 42 and 43 produced the same level")
	}
}

func TestGenerateInvariants(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		opts := DefaultGenerateOptions()
		opts.Seed = seed
		opts.Segments = 40
		opts.ThicknessVariance = 1
		lvl, err := Generate(opts)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		m := lvl.Map
		if m.Width() != opts.Width || m.Height() != opts.Height {
			t.Fatalf("seed %d: size %dx%d", seed, m.Width(), m.Height())
		}
		for x := 0; x < m.Width(); x++ {
			if m.Tile(x, 0) != 1 || m.Tile(x, m.Height()-1) != 1 {
				t.Fatalf("seed %d: top/bottom border open at x=%d", seed, x)
			}
		}
		for y := 0; y < m.Height(); y++ {
			if m.Tile(0, y) != 1 || m.Tile(m.Width()-1, y) != 1 {
				t.Fatalf("seed %d: side border open at y=%d", seed, y)
			}
		}
		if err := lvl.Validate(); err != nil {
			t.Errorf("seed %d: Validate() = %v", seed, err)
		}
		sx, sy := lvl.Spawn.Cell()
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if !m.IsEmpty(sx+dx, sy+dy) {
					t.Errorf("seed %d: wall at (%d,%d) next to spawn", seed, sx+dx, sy+dy)
				}
			}
		}
	}
}

func TestGenerateTooSmall(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Width = 4
	if _, err := Generate(opts); !errors.Is(err, ErrLevelTooSmall) {
		t.Errorf("error = %v, want %v", err, ErrLevelTooSmall)
	}
}
