package engine

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrRegistrySealed   = errors.New("engine: texture registry already sealed")
	ErrRegistryUnsealed = errors.New("engine: texture registry queried before it was sealed")
	ErrNilTexture       = errors.New("engine: nil texture")
)

// TextureManager maps wall type ids and sprite names to textures.
//
// It has two phases. While populating, Register* may be called from any
// goroutine. Seal ends population; from then on the registry is read-only
// and lookups take no locks, so strip workers can share it. Looking up a
// texture before Seal panics with ErrRegistryUnsealed.
type TextureManager struct {
	mu      sync.Mutex
	sealed  bool
	walls   map[int]*Texture
	sprites map[string]*Texture
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		walls:   make(map[int]*Texture),
		sprites: make(map[string]*Texture),
	}
}

// RegisterWall binds a texture to a wall type, replacing any previous one.
func (m *TextureManager) RegisterWall(wallType int, t *Texture) error {
	if t == nil {
		return fmt.Errorf("%w for wall type %d", ErrNilTexture, wallType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sealed {
		return ErrRegistrySealed
	}
	m.walls[wallType] = t
	return nil
}

// RegisterSprite binds a texture to a sprite name, replacing any previous one.
func (m *TextureManager) RegisterSprite(name string, t *Texture) error {
	if t == nil {
		return fmt.Errorf("%w for sprite %q", ErrNilTexture, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sealed {
		return ErrRegistrySealed
	}
	m.sprites[name] = t
	return nil
}

// Seal ends population. It is idempotent.
func (m *TextureManager) Seal() {
	m.mu.Lock()
	if !m.sealed {
		Logger().Info("texture registry sealed", "walls", len(m.walls), "sprites", len(m.sprites))
	}
	m.sealed = true
	m.mu.Unlock()
}

func (m *TextureManager) Sealed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sealed
}

// Wall returns the texture for a wall type.
func (m *TextureManager) Wall(wallType int) (*Texture, bool) {
	m.mustBeSealed()
	t, ok := m.walls[wallType]
	return t, ok
}

// Sprite returns the texture registered under name.
func (m *TextureManager) Sprite(name string) (*Texture, bool) {
	m.mustBeSealed()
	t, ok := m.sprites[name]
	return t, ok
}

// HasWall reports whether a wall texture is registered; usable in either phase.
func (m *TextureManager) HasWall(wallType int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.walls[wallType]
	return ok
}

// HasSprite reports whether a sprite is registered; usable in either phase.
func (m *TextureManager) HasSprite(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sprites[name]
	return ok
}

func (m *TextureManager) mustBeSealed() {
	// sealed only goes false -> true, and Seal happens before the renderer
	// exists, so an unlocked read is enough on the hot path.
	if !m.sealed {
		panic(ErrRegistryUnsealed)
	}
}
