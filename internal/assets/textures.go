package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"wolfcast/internal/engine"
)

const (
	DefaultTextureSize = 64
	DefaultSpriteSize  = 64

	wallName  = "wall"
	wall2Name = "wall2"
)

// WallTextureNames maps wall types to texture asset names.
var WallTextureNames = map[int]string{
	1: wallName,
	2: wall2Name,
	3: wallName,
	4: wall2Name,
	5: wallName,
}

var imageExts = []string{".png", ".bmp"}

// asset is one texture to resolve.
type asset struct {
	name   string
	sprite bool
	frame  int
	tex    *engine.Texture
	loaded bool
}

// LoadTextures fills tm with the wall textures and weapon sprites. Each
// asset is read from dir as <name>.png or <name>.bmp; walls are rescaled to
// size x size. An asset with no file, or an empty dir, falls back to a
// procedural texture. Files that exist but fail to decode are errors.
// LoadTextures does not seal tm.
func LoadTextures(ctx context.Context, dir string, size int, transparent uint32, tm *engine.TextureManager) error {
	if size <= 0 {
		size = DefaultTextureSize
	}
	assets := []*asset{{name: wallName}, {name: wall2Name}}
	for f := 0; f <= engine.ShootAnimationFrames; f++ {
		assets = append(assets, &asset{name: engine.SpriteName(f), sprite: true, frame: f})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, a := range assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tex, err := loadAsset(dir, a, size, transparent)
			if err != nil {
				return err
			}
			if tex != nil {
				a.tex, a.loaded = tex, true
			} else if a.sprite {
				a.tex = ProceduralWeapon(a.frame, DefaultSpriteSize, transparent)
			} else if a.name == wall2Name {
				a.tex = ProceduralWall2(size)
			} else {
				a.tex = ProceduralWall(size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	byName := make(map[string]*engine.Texture, len(assets))
	loaded := 0
	for _, a := range assets {
		byName[a.name] = a.tex
		if a.loaded {
			loaded++
		} else if dir != "" {
			engine.Logger().Warn("texture asset missing, using procedural texture", "name", a.name, "dir", dir)
		}
		if a.sprite {
			if err := tm.RegisterSprite(a.name, a.tex); err != nil {
				return err
			}
		}
	}
	for wallType, name := range WallTextureNames {
		if err := tm.RegisterWall(wallType, byName[name]); err != nil {
			return err
		}
	}
	engine.Logger().Info("textures ready", "loaded", loaded, "procedural", len(assets)-loaded)
	return nil
}

// NewRegistry loads textures into a new registry and seals it.
func NewRegistry(ctx context.Context, dir string, size int, transparent uint32) (*engine.TextureManager, error) {
	tm := engine.NewTextureManager()
	if err := LoadTextures(ctx, dir, size, transparent, tm); err != nil {
		return nil, err
	}
	tm.Seal()
	return tm, nil
}

// loadAsset returns nil, nil when no file exists for a.
func loadAsset(dir string, a *asset, size int, transparent uint32) (*engine.Texture, error) {
	if dir == "" {
		return nil, nil
	}
	for _, ext := range imageExts {
		path := filepath.Join(dir, a.name+ext)
		img, err := decodeFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if !a.sprite {
			img = scale(img, size)
		}
		return engine.NewTextureFromImage(img, transparent)
	}
	return nil, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return img, nil
}

// scale resamples img to size x size with nearest-neighbour filtering so
// texel edges stay sharp.
func scale(img image.Image, size int) image.Image {
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
