package game

// TileKind discriminates what occupies a grid cell. An empty cell is a nil
// Tile, so code can switch on the concrete type without "has field" probing.
type TileKind int

const (
	KindUnit TileKind = iota + 1
	KindTower
)

// Tile is the tagged variant stored in arena cells.
type Tile interface {
	TileKind() TileKind
	TileOwner() string
	TileGlyph() string
}

// UnitCategory distinguishes grid-dwelling card kinds. Spells never become
// units; they are resolved as effects at deploy time.
type UnitCategory string

const (
	CategoryTroop    UnitCategory = "troop"
	CategoryBuilding UnitCategory = "building"
)

// Unit is a deployed troop or building occupying one cell. Created once on
// deploy, removed when HP reaches zero.
type Unit struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Owner    string       `json:"owner"`
	HP       int          `json:"hp"`
	Damage   int          `json:"damage"`
	Range    int          `json:"range"`
	Speed    int          `json:"speed"`
	Category UnitCategory `json:"category"`
	Special  string       `json:"special,omitempty"`
	Glyph    string       `json:"glyph"`
}

func (u *Unit) TileKind() TileKind { return KindUnit }
func (u *Unit) TileOwner() string  { return u.Owner }
func (u *Unit) TileGlyph() string  { return u.Glyph }

// TowerMarker is the grid projection of a tower cell. It carries no HP:
// tower health truth lives only in the arena's tower table, and markers are
// rebuilt wholesale by SyncTowerMarkers.
type TowerMarker struct {
	Owner string    `json:"owner"`
	Slot  TowerSlot `json:"slot"`
	Glyph string    `json:"glyph"`
}

func (t *TowerMarker) TileKind() TileKind { return KindTower }
func (t *TowerMarker) TileOwner() string  { return t.Owner }
func (t *TowerMarker) TileGlyph() string  { return t.Glyph }
