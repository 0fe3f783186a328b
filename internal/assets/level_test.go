package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"wolfcast/internal/engine"
)

func TestDefaultLevel(t *testing.T) {
	lvl := DefaultLevel()
	m := lvl.Map
	if m.Width() != 24 || m.Height() != 24 {
		t.Fatalf("size = %dx%d, want 24x24", m.Width(), m.Height())
	}
	for i := 0; i < 24; i++ {
		for _, c := range [][2]int{{i, 0}, {i, 23}, {0, i}, {23, i}} {
			if got := m.Tile(c[0], c[1]); got != 1 {
				t.Fatalf("border tile (%d,%d) = %d, want 1", c[0], c[1], got)
			}
		}
	}
	if x, y := lvl.Spawn.Cell(); !m.IsEmpty(x, y) {
		t.Errorf("spawn %+v is not on an empty tile", lvl.Spawn)
	}
	seen := map[int]bool{}
	for _, row := range m.Rows() {
		for _, tile := range row {
			seen[tile] = true
		}
	}
	for wallType := 1; wallType <= 5; wallType++ {
		if !seen[wallType] {
			t.Errorf("wall type %d missing from default level", wallType)
		}
	}
}

func levelImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, Palette[1])
		}
	}
	img.SetRGBA(1, 1, SpawnColor)
	// Slightly off black still decodes as floor.
	img.SetRGBA(2, 1, color.RGBA{R: 0x10, G: 0x08, B: 0x04, A: 0xFF})
	img.SetRGBA(3, 2, Palette[4])
	img.SetRGBA(0, 2, color.RGBA{R: 0xE0, G: 0xF0, A: 0xFF})
	return img
}

func TestDecodeLevel(t *testing.T) {
	lvl, err := DecodeLevel(levelImage())
	if err != nil {
		t.Fatalf("DecodeLevel error = %v", err)
	}
	want := [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{5, 1, 1, 4},
	}
	got := lvl.Map.Rows()
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("tile (%d,%d) = %d, want %d", x, y, got[y][x], want[y][x])
			}
		}
	}
	if !lvl.HasSpawn || lvl.Spawn != (engine.Vec2{X: 1.5, Y: 1.5}) {
		t.Errorf("spawn = %+v (%v), want (1.5,1.5)", lvl.Spawn, lvl.HasSpawn)
	}
}

func TestDecodeLevelErrors(t *testing.T) {
	if _, err := DecodeLevel(image.NewRGBA(image.Rect(0, 0, 2, 5))); !errors.Is(err, ErrLevelTooSmall) {
		t.Errorf("2x5 image: error = %v, want %v", err, ErrLevelTooSmall)
	}
	img := levelImage()
	img.SetRGBA(2, 1, SpawnColor)
	if _, err := DecodeLevel(img); !errors.Is(err, ErrMultipleSpawns) {
		t.Errorf("two spawns: error = %v, want %v", err, ErrMultipleSpawns)
	}
}

// borderedImage is a w x h level of floor inside a type 1 border.
func borderedImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{A: 0xFF}
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				c = Palette[1]
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeLevelPicksSpawn(t *testing.T) {
	img := borderedImage(6, 6)
	lvl, err := DecodeLevel(img)
	if err != nil {
		t.Fatalf("DecodeLevel error = %v", err)
	}
	if !lvl.HasSpawn || lvl.Spawn != (engine.Vec2{X: 2.5, Y: 2.5}) {
		t.Errorf("spawn = %+v (%v), want (2.5,2.5)", lvl.Spawn, lvl.HasSpawn)
	}
	if err := lvl.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	// With the middle walled off the nearest free tile is chosen.
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		img.SetRGBA(c[0], c[1], Palette[2])
	}
	lvl, err = DecodeLevel(img)
	if err != nil {
		t.Fatalf("DecodeLevel error = %v", err)
	}
	if x, y := lvl.Spawn.Cell(); !lvl.Map.IsEmpty(x, y) {
		t.Errorf("spawn %+v is on tile %d", lvl.Spawn, lvl.Map.Tile(x, y))
	}
	if want := (engine.Vec2{X: 2.5, Y: 1.5}); lvl.Spawn != want {
		t.Errorf("spawn = %+v, want %+v", lvl.Spawn, want)
	}
}

func TestDecodeLevelNoFloor(t *testing.T) {
	img := borderedImage(3, 3)
	img.SetRGBA(1, 1, Palette[3])
	if _, err := DecodeLevel(img); !errors.Is(err, ErrNoSpawn) {
		t.Errorf("error = %v, want %v", err, ErrNoSpawn)
	}
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name  string
		spawn engine.Vec2
		has   bool
		want  error
	}{
		{"ok", engine.Vec2{X: 22, Y: 12}, true, nil},
		{"missing", engine.Vec2{X: 22, Y: 12}, false, ErrNoSpawn},
		{"in border", engine.Vec2{X: 0.5, Y: 12}, true, ErrSpawnBlocked},
		{"outside", engine.Vec2{X: 40, Y: 40}, true, ErrSpawnBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := DefaultLevel()
			lvl.Spawn, lvl.HasSpawn = tt.spawn, tt.has
			if err := lvl.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadLevelImageFormats(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(f *os.File, img image.Image) error{
		"level.png": func(f *os.File, img image.Image) error { return png.Encode(f, img) },
		"level.bmp": func(f *os.File, img image.Image) error { return bmp.Encode(f, img) },
	}
	src := EncodeLevel(DefaultLevel())
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := encode(f, src); err != nil {
				t.Fatal(err)
			}
			if err := f.Close(); err != nil {
				t.Fatal(err)
			}

			lvl, err := LoadLevelImage(path)
			if err != nil {
				t.Fatalf("LoadLevelImage error = %v", err)
			}
			want := DefaultLevel()
			if lvl.Spawn != want.Spawn.Add(engine.Vec2{X: 0.5, Y: 0.5}) {
				t.Errorf("spawn = %+v", lvl.Spawn)
			}
			wantRows, gotRows := want.Map.Rows(), lvl.Map.Rows()
			for y := range wantRows {
				for x := range wantRows[y] {
					if gotRows[y][x] != wantRows[y][x] {
						t.Fatalf("tile (%d,%d) = %d, want %d", x, y, gotRows[y][x], wantRows[y][x])
					}
				}
			}
		})
	}
}

func TestLoadLevelImageMissing(t *testing.T) {
	_, err := LoadLevelImage(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want not exist", err)
	}
}
