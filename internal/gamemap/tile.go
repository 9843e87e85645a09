package gamemap

// TileKind is what a map cell is made of.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairsDown
)

type tileTraits struct {
	walkable, transparent bool
}

var traits = [...]tileTraits{
	TileWall:       {},
	TileFloor:      {walkable: true, transparent: true},
	TileStairsDown: {walkable: true, transparent: true},
}

// Tile is one map cell: its kind plus what the player knows about it.
// Visible is recomputed by every field-of-view pass; Explored only ever
// turns on.
type Tile struct {
	Kind     TileKind
	Explored bool
	Visible  bool
}

func (t Tile) Walkable() bool    { return traits[t.Kind].walkable }
func (t Tile) Transparent() bool { return traits[t.Kind].transparent }

func MakeWall() Tile       { return Tile{Kind: TileWall} }
func MakeFloor() Tile      { return Tile{Kind: TileFloor} }
func MakeStairsDown() Tile { return Tile{Kind: TileStairsDown} }
