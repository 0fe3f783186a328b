package engine

import "strconv"

// WeaponState is the weapon animation state.
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponShooting
)

func (s WeaponState) String() string {
	if s == WeaponShooting {
		return "shooting"
	}
	return "idle"
}

const (
	ShootAnimationFrames = 5
	shootFrameTime       = 0.08
	spritePrefix         = "shoot_"
)

// Weapon drives the muzzle-flash animation. Frame 0 is the resting pose;
// a shot plays frames 1..ShootAnimationFrames.
type Weapon struct {
	state WeaponState
	frame int
	timer float64
}

func NewWeapon() *Weapon { return &Weapon{} }

// StartShooting begins a shot and reports whether it did; a shot already in
// progress is not restarted.
func (w *Weapon) StartShooting() bool {
	if w.state != WeaponIdle {
		return false
	}
	w.state = WeaponShooting
	w.frame = 1
	w.timer = 0
	return true
}

// Update advances the animation by dt seconds.
func (w *Weapon) Update(dt float64) {
	if w.state != WeaponShooting {
		return
	}
	w.timer += dt
	if w.timer < shootFrameTime {
		return
	}
	w.timer = 0
	w.frame++
	if w.frame > ShootAnimationFrames {
		w.frame = 0
		w.state = WeaponIdle
	}
}

func (w *Weapon) State() WeaponState { return w.state }
func (w *Weapon) Frame() int         { return w.frame }

// SpriteName is the registry name of the current frame's sprite.
func (w *Weapon) SpriteName() string { return SpriteName(w.frame) }

// SpriteName returns the registry name of weapon animation frame n.
func SpriteName(frame int) string {
	return spritePrefix + strconv.Itoa(frame)
}
