package engine

import (
	"errors"
	"fmt"
)

// OutOfBounds is the tile value reported for coordinates outside the map.
// Rays that leave the map terminate with this wall type.
const OutOfBounds = -1

var (
	ErrEmptyMap     = errors.New("engine: map has no tiles")
	ErrRaggedMap    = errors.New("engine: map rows differ in length")
	ErrNegativeTile = errors.New("engine: map tile is negative")
)

// Map is an immutable tile grid. Tile 0 is empty; positive values are wall
// type ids used for both colour and texture lookup.
type Map struct {
	width, height int
	tiles         []int
}

// NewMap copies rows into a Map. rows is y-major: rows[y][x].
func NewMap(rows [][]int) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	m := &Map{
		width:  width,
		height: len(rows),
		tiles:  make([]int, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedMap, y, len(row), width)
		}
		for x, t := range row {
			if t < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeTile, t, x, y)
			}
			m.tiles[y*width+x] = t
		}
	}
	return m, nil
}

// MustMap is NewMap for literal levels known to be well formed.
func MustMap(rows [][]int) *Map {
	m, err := NewMap(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) addresses a tile.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Tile returns the tile at (x, y), or OutOfBounds. Callers must not treat
// OutOfBounds as empty.
func (m *Map) Tile(x, y int) int {
	if !m.InBounds(x, y) {
		return OutOfBounds
	}
	return m.tiles[y*m.width+x]
}

func (m *Map) IsWall(x, y int) bool  { return m.Tile(x, y) > 0 }
func (m *Map) IsEmpty(x, y int) bool { return m.Tile(x, y) == 0 }

// Rows returns a y-major copy of the grid.
func (m *Map) Rows() [][]int {
	rows := make([][]int, m.height)
	for y := range rows {
		rows[y] = append([]int(nil), m.tiles[y*m.width:(y+1)*m.width]...)
	}
	return rows
}
