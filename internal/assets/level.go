// Package assets provides levels and textures for the engine: the stock
// level, level images, procedurally generated levels, and texture loading
// with procedural fallbacks.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // level and texture images
	"os"

	_ "golang.org/x/image/bmp" // level and texture images

	"wolfcast/internal/engine"
)

var (
	ErrLevelTooSmall  = errors.New("assets: level must be at least 3x3 tiles")
	ErrMultipleSpawns = errors.New("assets: level image has more than one spawn pixel")
	ErrNoSpawn        = errors.New("assets: level has no empty tile to spawn on")
	ErrSpawnBlocked   = errors.New("assets: spawn is not on an empty tile")
)

// Level is a map plus the pose a player enters it with.
type Level struct {
	Map      *engine.Map
	Spawn    engine.Vec2
	HasSpawn bool
}

// SpawnColor marks the spawn cell in level images.
var SpawnColor = color.RGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}

// Palette maps wall types to the colours used in level images. Black is
// empty floor.
var Palette = map[int]color.RGBA{
	1: {R: 0xFF, A: 0xFF},
	2: {G: 0xFF, A: 0xFF},
	3: {B: 0xFF, A: 0xFF},
	4: {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	5: {R: 0xFF, G: 0xFF, A: 0xFF},
}

var defaultRows = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2, 0, 0, 0, 0, 3, 0, 3, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 3, 0, 0, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 2, 2, 0, 2, 2, 0, 0, 0, 0, 3, 0, 3, 0, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 0, 0, 0, 5, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 4, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// DefaultLevel returns the stock 24x24 level with the default spawn.
func DefaultLevel() *Level {
	return &Level{
		Map:      engine.MustMap(defaultRows),
		Spawn:    engine.Vec2{X: engine.DefaultPlayerX, Y: engine.DefaultPlayerY},
		HasSpawn: true,
	}
}

// LoadLevelImage reads a PNG or BMP level where each pixel is one tile.
func LoadLevelImage(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", path, err)
	}
	lvl, err := DecodeLevel(img)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// DecodeLevel converts an image to a level. Every pixel snaps to the
// nearest palette entry, black or the spawn colour. The spawn cell is
// left empty and the player starts at its centre. Without a spawn pixel
// the empty tile nearest the middle of the map is used.
func DecodeLevel(img image.Image) (*Level, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrLevelTooSmall, w, h)
	}

	lvl := &Level{}
	rows := make([][]int, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]int, w)
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			tile, spawn := matchTile(c)
			if spawn {
				if lvl.HasSpawn {
					return nil, ErrMultipleSpawns
				}
				lvl.HasSpawn = true
				lvl.Spawn = engine.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			}
			rows[y][x] = tile
		}
	}
	m, err := engine.NewMap(rows)
	if err != nil {
		return nil, err
	}
	lvl.Map = m
	if !lvl.HasSpawn {
		spawn, ok := centralEmptyCell(m)
		if !ok {
			return nil, ErrNoSpawn
		}
		lvl.Spawn, lvl.HasSpawn = spawn, true
	}
	return lvl, nil
}

// Validate checks that the spawn is set and lies on an empty tile.
func (l *Level) Validate() error {
	if !l.HasSpawn {
		return ErrNoSpawn
	}
	if x, y := l.Spawn.Cell(); !l.Map.IsEmpty(x, y) {
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrSpawnBlocked, l.Spawn.X, l.Spawn.Y)
	}
	return nil
}

// centralEmptyCell returns the centre of the empty tile closest to the
// middle of m. Ties go to the first tile in row order.
func centralEmptyCell(m *engine.Map) (engine.Vec2, bool) {
	mid := engine.Vec2{X: float64(m.Width()) / 2, Y: float64(m.Height()) / 2}
	best, found := engine.Vec2{}, false
	bestDist := 0.0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.IsEmpty(x, y) {
				continue
			}
			c := engine.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			d := c.Add(mid.Scale(-1))
			if dist := d.Dot(d); !found || dist < bestDist {
				best, bestDist, found = c, dist, true
			}
		}
	}
	return best, found
}

// EncodeLevel renders a map back to palette colours, the inverse of
// DecodeLevel. Unknown wall types are drawn in the type 1 colour.
func EncodeLevel(lvl *Level) *image.RGBA {
	m := lvl.Map
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := color.RGBA{A: 0xFF}
			if t := m.Tile(x, y); t > 0 {
				var ok bool
				if c, ok = Palette[t]; !ok {
					c = Palette[1]
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	if lvl.HasSpawn {
		x, y := lvl.Spawn.Cell()
		img.SetRGBA(x, y, SpawnColor)
	}
	return img
}

func matchTile(c color.RGBA) (tile int, spawn bool) {
	best := colorDist(c, color.RGBA{A: 0xFF})
	if d := colorDist(c, SpawnColor); d < best {
		best, spawn = d, true
	}
	for t := 1; t <= len(Palette); t++ {
		if d := colorDist(c, Palette[t]); d < best {
			best, tile, spawn = d, t, false
		}
	}
	return tile, spawn
}

func colorDist(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
