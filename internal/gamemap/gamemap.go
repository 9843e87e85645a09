package gamemap

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap is one dungeon floor: a row-major tile grid, the rooms carved
// into it and its staircases.
type GameMap struct {
	Width, Height int
	Rooms         []Rect

	tiles      []Tile
	downstairs []Point
}

// New creates a map of solid wall.
func New(width, height int) *GameMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = MakeWall()
	}
	return &GameMap{Width: width, Height: height, tiles: tiles}
}

func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y) for in-place updates. (x, y) must be in
// bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.tiles[y*m.Width+x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	*m.At(x, y) = t
}

// tile returns the tile at (x, y), or false when out of bounds.
func (m *GameMap) tile(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return Tile{}, false
	}
	return *m.At(x, y), true
}

// IsWalkable is false outside the map.
func (m *GameMap) IsWalkable(x, y int) bool {
	t, ok := m.tile(x, y)
	return ok && t.Walkable()
}

// IsTransparent is false outside the map.
func (m *GameMap) IsTransparent(x, y int) bool {
	t, ok := m.tile(x, y)
	return ok && t.Transparent()
}

// IsVisible reports whether the last field-of-view pass lit (x, y).
func (m *GameMap) IsVisible(x, y int) bool {
	t, ok := m.tile(x, y)
	return ok && t.Visible
}

// ForEach calls fn with every tile, row by row.
func (m *GameMap) ForEach(fn func(x, y int, t *Tile)) {
	for i := range m.tiles {
		fn(i%m.Width, i/m.Width, &m.tiles[i])
	}
}

// AddDownstairs turns (x, y) into a staircase and registers it.
func (m *GameMap) AddDownstairs(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.Set(x, y, MakeStairsDown())
	m.downstairs = append(m.downstairs, Point{X: x, Y: y})
}

// Downstairs returns the registered staircase tiles.
func (m *GameMap) Downstairs() []Point {
	return m.downstairs
}

// IsDownstairs reports whether (x, y) is a registered staircase tile.
func (m *GameMap) IsDownstairs(x, y int) bool {
	for _, p := range m.downstairs {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
