package engine

import "math"

// Vec2 is a point or direction in tile-space units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Cell() (x, y int)     { return int(math.Floor(v.X)), int(math.Floor(v.Y)) }

// Player is the camera: a position, a unit view direction and the camera
// plane perpendicular to it. |Plane|/|Dir| is tan(FOV/2).
type Player struct {
	Pos   Vec2
	Dir   Vec2
	Plane Vec2

	MoveSpeed     float64
	RotationSpeed float64
}

// Move returns the position reached by walking forward along Dir and
// strafing along Plane. It does not mutate the player; resolve collisions
// before committing with UpdatePosition.
func (p *Player) Move(forward, strafe float64) Vec2 {
	return p.Pos.
		Add(p.Dir.Scale(forward * p.MoveSpeed)).
		Add(p.Plane.Scale(strafe * p.MoveSpeed))
}

// Rotate turns Dir and Plane by angle radians. Both vectors use their
// pre-rotation X so they stay perpendicular and keep their lengths.
func (p *Player) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)

	oldDirX := p.Dir.X
	p.Dir.X = p.Dir.X*cos - p.Dir.Y*sin
	p.Dir.Y = oldDirX*sin + p.Dir.Y*cos

	oldPlaneX := p.Plane.X
	p.Plane.X = p.Plane.X*cos - p.Plane.Y*sin
	p.Plane.Y = oldPlaneX*sin + p.Plane.Y*cos
}

// UpdatePosition commits a collision-resolved position.
func (p *Player) UpdatePosition(pos Vec2) {
	p.Pos = pos
}

// FOV returns the horizontal field of view in radians.
func (p *Player) FOV() float64 {
	d := p.Dir.Len()
	if d == 0 {
		return 0
	}
	return 2 * math.Atan(p.Plane.Len()/d)
}
