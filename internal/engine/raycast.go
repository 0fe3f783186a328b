package engine

import "math"

// Side identifies which grid axis a ray crossed when it hit.
const (
	// SideX means the ray stepped in X and hit a north/south facing face.
	SideX = 0
	// SideY means the ray stepped in Y and hit an east/west facing face.
	SideY = 1
)

// RaycastResult describes the wall hit for one screen column.
type RaycastResult struct {
	// WallDistance is the perpendicular (fisheye-free) distance to the hit,
	// never below the configured minimum.
	WallDistance float64
	// WallType is the hit tile value, or OutOfBounds.
	WallType int
	Side     int
	// WallX is the hit offset across the wall face in [0,1).
	WallX float64

	// RayDir is the ray direction for the column.
	RayDir Vec2
	// MapX, MapY is the terminating cell.
	MapX, MapY int
	// Steps is the number of DDA iterations taken.
	Steps int
}

// castRay traces the ray through cameraX in [-1,1] with the DDA. Leaving
// the map counts as a hit, so the loop always terminates, within
// m.Width()+m.Height() steps when starting inside the map.
func castRay(cameraX float64, p *Player, m *Map, minDist float64) RaycastResult {
	rayDir := p.Dir.Add(p.Plane.Scale(cameraX))
	mapX, mapY := p.Pos.Cell()

	deltaDistX := deltaDist(rayDir.X)
	deltaDistY := deltaDist(rayDir.Y)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDir.X < 0 {
		stepX = -1
		sideDistX = (p.Pos.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - p.Pos.X) * deltaDistX
	}
	if rayDir.Y < 0 {
		stepY = -1
		sideDistY = (p.Pos.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - p.Pos.Y) * deltaDistY
	}

	side, wallType, steps := SideX, 0, 0
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}
		steps++
		if !m.InBounds(mapX, mapY) {
			wallType = OutOfBounds
			break
		}
		if t := m.Tile(mapX, mapY); t > 0 {
			wallType = t
			break
		}
	}

	var perpWallDist, wallX float64
	if side == SideX {
		perpWallDist = (float64(mapX) - p.Pos.X + float64(1-stepX)/2) / rayDir.X
		wallX = p.Pos.Y + perpWallDist*rayDir.Y
	} else {
		perpWallDist = (float64(mapY) - p.Pos.Y + float64(1-stepY)/2) / rayDir.Y
		wallX = p.Pos.X + perpWallDist*rayDir.X
	}
	wallX -= math.Floor(wallX)

	return RaycastResult{
		WallDistance: math.Max(minDist, perpWallDist),
		WallType:     wallType,
		Side:         side,
		WallX:        wallX,
		RayDir:       rayDir,
		MapX:         mapX,
		MapY:         mapY,
		Steps:        steps,
	}
}

func deltaDist(component float64) float64 {
	if component == 0 {
		return deltaDistInfinity
	}
	return math.Abs(1 / component)
}

// cameraX maps screen column x to [-1,1].
func cameraX(x, screenWidth int) float64 {
	return 2*float64(x)/float64(screenWidth) - 1
}
