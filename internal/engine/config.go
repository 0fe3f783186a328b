package engine

import (
	"errors"
	"fmt"
)

// Rendering and simulation defaults. These mirror the fixed configuration
// surface of the engine: screen size, initial pose, speeds and palette.
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultStripCount   = 8

	DefaultMinWallDistance = 0.0001

	DefaultPlayerX       = 22.0
	DefaultPlayerY       = 12.0
	DefaultDirX          = -1.0
	DefaultDirY          = 0.0
	DefaultPlaneX        = 0.0
	DefaultPlaneY        = 0.66
	DefaultMoveSpeed     = 0.1
	DefaultRotationSpeed = 0.05

	CeilingColor      uint32 = 0xFF404040
	FloorColor        uint32 = 0xFF808080
	DefaultWallColor  uint32 = 0xFFFF00FF
	OutOfBoundsColor  uint32 = 0xFF000000
	ClearColor        uint32 = 0xFF000000
	SpriteTransparent uint32 = 0xFF980088

	// deltaDistInfinity stands in for 1/0 when a ray component is zero.
	deltaDistInfinity = 1e30

	// maxLineHeightFactor caps the projected wall height at this many
	// screen heights.
	maxLineHeightFactor = 4

	// Level-of-detail thresholds, expressed as projected wall height over
	// screen height.
	lodSkipRatio  = 2
	lodSolidRatio = 8

	movementDeadzone = 0.01
	rotationDeadzone = 1e-4
	maxFrameDelta    = 0.25
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("engine: invalid config")

// Config collects every tunable used by the renderer and the game loop.
type Config struct {
	ScreenWidth  int
	ScreenHeight int

	// StripCount is the number of vertical strips rendered in parallel.
	StripCount int

	MinWallDistance float64
	UseTextures     bool
	ShowWeapon      bool

	// WeaponScale is the integer upscale of the weapon sprite; 0 picks the
	// largest scale that keeps the sprite within half the screen height.
	WeaponScale int

	CeilingColor      uint32
	FloorColor        uint32
	WallColors        map[int]uint32
	DefaultWallColor  uint32
	OutOfBoundsColor  uint32
	SpriteTransparent uint32

	Spawn         Vec2
	SpawnDir      Vec2
	SpawnPlane    Vec2
	MoveSpeed     float64
	RotationSpeed float64
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     DefaultScreenWidth,
		ScreenHeight:    DefaultScreenHeight,
		StripCount:      DefaultStripCount,
		MinWallDistance: DefaultMinWallDistance,
		UseTextures:     true,
		ShowWeapon:      true,
		CeilingColor:    CeilingColor,
		FloorColor:      FloorColor,
		WallColors: map[int]uint32{
			1: 0xFFFF0000,
			2: 0xFF00FF00,
			3: 0xFF0000FF,
			4: 0xFFFFFFFF,
			5: 0xFFFFFF00,
		},
		DefaultWallColor:  DefaultWallColor,
		OutOfBoundsColor:  OutOfBoundsColor,
		SpriteTransparent: SpriteTransparent,
		Spawn:             Vec2{X: DefaultPlayerX, Y: DefaultPlayerY},
		SpawnDir:          Vec2{X: DefaultDirX, Y: DefaultDirY},
		SpawnPlane:        Vec2{X: DefaultPlaneX, Y: DefaultPlaneY},
		MoveSpeed:         DefaultMoveSpeed,
		RotationSpeed:     DefaultRotationSpeed,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.StripCount <= 0:
		return fmt.Errorf("%w: strip count %d", ErrInvalidConfig, c.StripCount)
	case c.MinWallDistance <= 0:
		return fmt.Errorf("%w: min wall distance %g", ErrInvalidConfig, c.MinWallDistance)
	case c.MoveSpeed <= 0 || c.RotationSpeed <= 0:
		return fmt.Errorf("%w: speeds %g/%g", ErrInvalidConfig, c.MoveSpeed, c.RotationSpeed)
	case c.WeaponScale < 0:
		return fmt.Errorf("%w: weapon scale %d", ErrInvalidConfig, c.WeaponScale)
	}
	return nil
}

// NewPlayer builds a player at the configured spawn pose.
func (c Config) NewPlayer() Player {
	return Player{
		Pos:           c.Spawn,
		Dir:           c.SpawnDir,
		Plane:         c.SpawnPlane,
		MoveSpeed:     c.MoveSpeed,
		RotationSpeed: c.RotationSpeed,
	}
}

// wallColor resolves the flat colour for a wall type.
func (c *Config) wallColor(wallType int) uint32 {
	if wallType == OutOfBounds {
		return c.OutOfBoundsColor
	}
	if clr, ok := c.WallColors[wallType]; ok {
		return clr
	}
	return c.DefaultWallColor
}
