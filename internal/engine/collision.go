package engine

// CollisionDetector validates player movement against the map.
type CollisionDetector struct{}

// CanMoveTo reports whether the tile containing p is in bounds and empty.
func (CollisionDetector) CanMoveTo(p Vec2, m *Map) bool {
	x, y := p.Cell()
	return m.InBounds(x, y) && m.IsEmpty(x, y)
}

// CheckMovement resolves the X then the Y component of a move
// independently, the Y test using the already-resolved X. A blocked axis
// does not stop motion along the other one, so the player slides along
// walls instead of sticking at corners.
func (c CollisionDetector) CheckMovement(current, proposed Vec2, m *Map) Vec2 {
	resolved := current
	if c.CanMoveTo(Vec2{X: proposed.X, Y: current.Y}, m) {
		resolved.X = proposed.X
	}
	if c.CanMoveTo(Vec2{X: resolved.X, Y: proposed.Y}, m) {
		resolved.Y = proposed.Y
	}
	return resolved
}
