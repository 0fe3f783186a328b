package engine

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
)

var ErrTextureSize = errors.New("engine: texture size mismatch")

// Texture is an immutable ARGB pixel grid stored row-major.
//
// Column returns a cached top-to-bottom copy of one texture column. The
// cache is built once, on first use, and is safe to build from several
// strip workers at the same time.
type Texture struct {
	width, height int
	pixels        []uint32

	columnsOnce sync.Once
	columns     [][]uint32
}

// NewTexture wraps width*height ARGB pixels. The slice is copied.
func NewTexture(width, height int, pixels []uint32) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrTextureSize, len(pixels), width, height)
	}
	return &Texture{
		width:  width,
		height: height,
		pixels: append([]uint32(nil), pixels...),
	}, nil
}

// NewTextureFromImage converts img to ARGB. Fully transparent pixels become
// transparent, the sprite colour key.
func NewTextureFromImage(img image.Image, transparent uint32) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if c.A == 0 {
				pixels[y*w+x] = transparent
				continue
			}
			pixels[y*w+x] = PackARGB(c.R, c.G, c.B, c.A)
		}
	}
	return NewTexture(w, h, pixels)
}

// PackARGB packs 8-bit channels into 0xAARRGGBB.
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits 0xAARRGGBB into channels.
func UnpackARGB(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// At returns the pixel at (x, y), clamped to the grid.
func (t *Texture) At(x, y int) uint32 {
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	return t.pixels[y*t.width+x]
}

// Sample returns the pixel at normalised (u, v), wrapping both into [0,1).
func (t *Texture) Sample(u, v float64) uint32 {
	u = wrapUnit(u)
	v = wrapUnit(v)
	return t.At(int(u*float64(t.width)), int(v*float64(t.height)))
}

// Column returns texture column x (clamped) from top to bottom. The
// returned slice is shared and must not be modified.
func (t *Texture) Column(x int) []uint32 {
	t.columnsOnce.Do(t.buildColumns)
	return t.columns[clampInt(x, 0, t.width-1)]
}

func (t *Texture) buildColumns() {
	backing := make([]uint32, t.width*t.height)
	cols := make([][]uint32, t.width)
	for x := 0; x < t.width; x++ {
		col := backing[x*t.height : (x+1)*t.height : (x+1)*t.height]
		for y := 0; y < t.height; y++ {
			col[y] = t.pixels[y*t.width+x]
		}
		cols[x] = col
	}
	t.columns = cols
}

func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	// -tiny + 1 rounds to exactly 1.
	if v >= 1 {
		v = 0
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
