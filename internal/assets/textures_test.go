package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wolfcast/internal/engine"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestNewRegistryProcedural(t *testing.T) {
	tm, err := NewRegistry(context.Background(), "", 32, engine.SpriteTransparent)
	if err != nil {
		t.Fatalf("NewRegistry error = %v", err)
	}
	if !tm.Sealed() {
		t.Fatal("registry not sealed")
	}
	for wallType := 1; wallType <= 5; wallType++ {
		tex, ok := tm.Wall(wallType)
		if !ok {
			t.Fatalf("no texture for wall type %d", wallType)
		}
		if tex.Width() != 32 || tex.Height() != 32 {
			t.Errorf("wall %d size %dx%d, want 32x32", wallType, tex.Width(), tex.Height())
		}
	}
	w1, _ := tm.Wall(1)
	w3, _ := tm.Wall(3)
	w2, _ := tm.Wall(2)
	if w1 != w3 || w1 == w2 {
		t.Error("wall types 1 and 3 should share a texture distinct from type 2")
	}
	for f := 0; f <= engine.ShootAnimationFrames; f++ {
		if _, ok := tm.Sprite(engine.SpriteName(f)); !ok {
			t.Errorf("missing sprite %s", engine.SpriteName(f))
		}
	}
}

func TestLoadTexturesFromDir(t *testing.T) {
	dir := t.TempDir()

	wall := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	wall.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	wall.SetNRGBA(1, 0, color.NRGBA{G: 0xFF, A: 0xFF})
	wall.SetNRGBA(0, 1, color.NRGBA{B: 0xFF, A: 0xFF})
	wall.SetNRGBA(1, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	writePNG(t, filepath.Join(dir, "wall.png"), wall)

	sprite := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	sprite.SetNRGBA(1, 1, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	writePNG(t, filepath.Join(dir, "shoot_0.png"), sprite)

	tm, err := NewRegistry(context.Background(), dir, 8, engine.SpriteTransparent)
	if err != nil {
		t.Fatalf("NewRegistry error = %v", err)
	}

	tex, _ := tm.Wall(5)
	if tex.Width() != 8 || tex.Height() != 8 {
		t.Fatalf("scaled wall size %dx%d, want 8x8", tex.Width(), tex.Height())
	}
	// Nearest neighbour: each source texel becomes a 4x4 block.
	checks := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 0xFFFF0000},
		{3, 3, 0xFFFF0000},
		{4, 0, 0xFF00FF00},
		{0, 4, 0xFF0000FF},
		{7, 7, 0xFFFFFFFF},
	}
	for _, c := range checks {
		if got := tex.At(c.x, c.y); got != c.want {
			t.Errorf("wall At(%d,%d) = %#08x, want %#08x", c.x, c.y, got, c.want)
		}
	}

	spr, _ := tm.Sprite("shoot_0")
	if spr.Width() != 3 || spr.Height() != 2 {
		t.Errorf("sprite size %dx%d, sprites are not rescaled", spr.Width(), spr.Height())
	}
	if got := spr.At(0, 0); got != engine.SpriteTransparent {
		t.Errorf("transparent texel = %#08x, want key", got)
	}
	if got := spr.At(1, 1); got != 0xFF102030 {
		t.Errorf("opaque texel = %#08x", got)
	}

	// wall2 had no file and falls back to the procedural texture.
	w2, _ := tm.Wall(2)
	if w2.Width() != 8 {
		t.Errorf("fallback wall2 width = %d, want 8", w2.Width())
	}
}

func TestLoadTexturesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wall2.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRegistry(context.Background(), dir, 8, engine.SpriteTransparent); err == nil {
		t.Error("NewRegistry with a corrupt texture succeeded")
	}
}

func TestLoadTexturesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRegistry(ctx, "", 8, engine.SpriteTransparent); err == nil {
		t.Error("NewRegistry with a cancelled context succeeded")
	}
}

func TestProceduralWeaponFrames(t *testing.T) {
	idle := ProceduralWeapon(0, 64, engine.SpriteTransparent)
	flash := ProceduralWeapon(1, 64, engine.SpriteTransparent)
	count := func(tex *engine.Texture) int {
		n := 0
		for y := 0; y < tex.Height(); y++ {
			for x := 0; x < tex.Width(); x++ {
				if tex.At(x, y) != engine.SpriteTransparent {
					n++
				}
			}
		}
		return n
	}
	if count(idle) == 0 {
		t.Fatal("idle sprite is fully transparent")
	}
	if count(flash) <= count(idle) {
		t.Errorf("flash frame has %d opaque texels, idle %d", count(flash), count(idle))
	}
	if idle.At(0, 0) != engine.SpriteTransparent {
		t.Error("sprite corner should be transparent")
	}
}
