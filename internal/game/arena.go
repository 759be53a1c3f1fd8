package game

import "fmt"

const (
	DefaultWidth  = 16
	DefaultHeight = 10

	FlankTowerHP     = 1500
	KingTowerHP      = 3000
	FlankTowerGlyph  = "🏰"
	KingTowerGlyph   = "👑"
	EmptyCellGlyph   = "⬜"
	RiverCellGlyph   = "🌊"
	BridgeCellGlyph  = "🪵"
	defaultUnitGlyph = "🤺"
)

// TowerSlot names a tower position on one player's side.
type TowerSlot string

const (
	TowerLeft  TowerSlot = "left"
	TowerRight TowerSlot = "right"
	TowerKing  TowerSlot = "king"
)

// towerSlots is the deterministic iteration order over a tower set.
var towerSlots = [3]TowerSlot{TowerLeft, TowerRight, TowerKing}

// Cell is a grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tower holds the authoritative state of one tower. HP here is the single
// source of truth; grid markers are a derived projection.
type Tower struct {
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	Cells  []Cell `json:"cells"`
	Glyph  string `json:"glyph"`
	Active bool   `json:"active"`
}

// Arena owns the battlefield grid, the river/bridge geometry and the tower
// table for exactly two players. It does not own movement, targeting or
// combat rules.
type Arena struct {
	Width  int
	Height int

	grid [][]Tile

	p1ID string
	p2ID string

	riverCols  [2]int
	bridgeRows [2]int

	towers map[string]map[TowerSlot]*Tower
}

// NewArena builds an arena with towers placed for both owners and the
// marker projection written to the grid. The river is the two middle
// columns; bridges sit on the flank-tower rows.
func NewArena(width, height int, p1ID, p2ID string) *Arena {
	grid := make([][]Tile, height)
	for r := range grid {
		grid[r] = make([]Tile, width)
	}

	a := &Arena{
		Width:      width,
		Height:     height,
		grid:       grid,
		p1ID:       p1ID,
		p2ID:       p2ID,
		riverCols:  [2]int{width/2 - 1, width / 2},
		bridgeRows: [2]int{2, height - 3},
	}
	a.initTowers()
	a.SyncTowerMarkers()
	return a
}

// initTowers lays out left/right flanks and the two-cell king per owner.
// Player 1 holds the left edge, player 2 the right edge.
func (a *Arena) initTowers() {
	flankTop, flankBottom := 2, a.Height-3
	kingTop := a.Height/2 - 1

	side := func(flankCol, kingCol int) map[TowerSlot]*Tower {
		return map[TowerSlot]*Tower{
			TowerLeft: {
				HP: FlankTowerHP, MaxHP: FlankTowerHP, Glyph: FlankTowerGlyph, Active: true,
				Cells: []Cell{{flankTop, flankCol}},
			},
			TowerRight: {
				HP: FlankTowerHP, MaxHP: FlankTowerHP, Glyph: FlankTowerGlyph, Active: true,
				Cells: []Cell{{flankBottom, flankCol}},
			},
			TowerKing: {
				HP: KingTowerHP, MaxHP: KingTowerHP, Glyph: KingTowerGlyph, Active: false,
				Cells: []Cell{{kingTop, kingCol}, {kingTop + 1, kingCol}},
			},
		}
	}

	a.towers = map[string]map[TowerSlot]*Tower{
		a.p1ID: side(3, 1),
		a.p2ID: side(a.Width-4, a.Width-2),
	}
}

// InBounds reports whether (row, col) is inside the grid.
func (a *Arena) InBounds(row, col int) bool {
	return row >= 0 && row < a.Height && col >= 0 && col < a.Width
}

// Get returns the tile at (row, col), or nil when empty or out of bounds.
func (a *Arena) Get(row, col int) Tile {
	if !a.InBounds(row, col) {
		return nil
	}
	return a.grid[row][col]
}

// Set writes a tile. Writing outside the grid is a caller bug, not a
// recoverable condition.
func (a *Arena) Set(row, col int, t Tile) {
	if !a.InBounds(row, col) {
		panic(fmt.Sprintf("arena: set out of bounds (%d, %d)", row, col))
	}
	a.grid[row][col] = t
}

// IsEmpty reports whether the cell is in bounds and unoccupied.
func (a *Arena) IsEmpty(row, col int) bool {
	return a.InBounds(row, col) && a.grid[row][col] == nil
}

// Place writes a tile only into an empty cell.
func (a *Arena) Place(row, col int, t Tile) bool {
	if !a.IsEmpty(row, col) {
		return false
	}
	a.grid[row][col] = t
	return true
}

func (a *Arena) RiverLeftCol() int  { return a.riverCols[0] }
func (a *Arena) RiverRightCol() int { return a.riverCols[1] }

// IsRiverColumn reports whether col is one of the two river columns.
func (a *Arena) IsRiverColumn(col int) bool {
	return col == a.riverCols[0] || col == a.riverCols[1]
}

// IsBridgeCell reports whether a river cell is crossable.
func (a *Arena) IsBridgeCell(row, col int) bool {
	if !a.IsRiverColumn(col) {
		return false
	}
	return row == a.bridgeRows[0] || row == a.bridgeRows[1]
}

// IsTowerCell reports whether the cell holds a living tower's marker.
func (a *Arena) IsTowerCell(row, col int) bool {
	_, ok := a.Get(row, col).(*TowerMarker)
	return ok
}

// TowerAt returns the owner and slot of the tower marker at (row, col).
func (a *Arena) TowerAt(row, col int) (owner string, slot TowerSlot, ok bool) {
	m, ok := a.Get(row, col).(*TowerMarker)
	if !ok {
		return "", "", false
	}
	return m.Owner, m.Slot, true
}

// Tower returns the authoritative record for one tower, or nil for an
// unknown owner.
func (a *Arena) Tower(owner string, slot TowerSlot) *Tower {
	set, ok := a.towers[owner]
	if !ok {
		return nil
	}
	return set[slot]
}

// Owners returns both owner ids in deterministic player-1-first order.
func (a *Arena) Owners() [2]string {
	return [2]string{a.p1ID, a.p2ID}
}

// IsPlayerOne reports whether owner holds the left side.
func (a *Arena) IsPlayerOne(owner string) bool { return owner == a.p1ID }

// DamageTower subtracts from a tower's HP in the authoritative table,
// floored at zero. Hitting the king activates it; a flank reaching zero
// activates the owner's king. A dead tower's cells are cleared from the
// grid projection. No-op once the tower is at zero.
func (a *Arena) DamageTower(owner string, slot TowerSlot, amount int) {
	t := a.Tower(owner, slot)
	if t == nil || t.HP <= 0 {
		return
	}

	if slot == TowerKing {
		t.Active = true
	}

	t.HP -= amount
	if t.HP > 0 {
		return
	}
	t.HP = 0

	for _, c := range t.Cells {
		if a.InBounds(c.Row, c.Col) {
			if _, isTower := a.grid[c.Row][c.Col].(*TowerMarker); isTower {
				a.grid[c.Row][c.Col] = nil
			}
		}
	}

	if slot == TowerLeft || slot == TowerRight {
		a.towers[owner][TowerKing].Active = true
	}
}

// AnyKingDead returns the first owner (player 1 scanned first) whose king
// is at zero HP. The scan order is the documented tie-break for a
// same-tick double kill.
func (a *Arena) AnyKingDead() (owner string, ok bool) {
	for _, id := range a.Owners() {
		if k := a.Tower(id, TowerKing); k != nil && k.HP <= 0 {
			return id, true
		}
	}
	return "", false
}

// ClearTowerMarkers removes every tower marker from the grid.
func (a *Arena) ClearTowerMarkers() {
	for r := 0; r < a.Height; r++ {
		for c := 0; c < a.Width; c++ {
			if _, ok := a.grid[r][c].(*TowerMarker); ok {
				a.grid[r][c] = nil
			}
		}
	}
}

// SyncTowerMarkers rebuilds the grid's tower projection from the tower
// table. Idempotent; dead towers leave no marker.
func (a *Arena) SyncTowerMarkers() {
	a.ClearTowerMarkers()
	for _, owner := range a.Owners() {
		for _, slot := range towerSlots {
			t := a.towers[owner][slot]
			if t == nil || t.HP <= 0 {
				continue
			}
			for _, c := range t.Cells {
				if a.InBounds(c.Row, c.Col) {
					a.grid[c.Row][c.Col] = &TowerMarker{Owner: owner, Slot: slot, Glyph: t.Glyph}
				}
			}
		}
	}
}

// EachUnit calls fn for every unit tile in row-major order.
func (a *Arena) EachUnit(fn func(row, col int, u *Unit)) {
	for r := 0; r < a.Height; r++ {
		for c := 0; c < a.Width; c++ {
			if u, ok := a.grid[r][c].(*Unit); ok {
				fn(r, c, u)
			}
		}
	}
}

// CopyGrid returns a deep copy of the grid with cloned unit tiles, for
// snapshots handed outside the match lock.
func (a *Arena) CopyGrid() [][]Tile {
	out := make([][]Tile, a.Height)
	for r := 0; r < a.Height; r++ {
		out[r] = make([]Tile, a.Width)
		for c := 0; c < a.Width; c++ {
			switch t := a.grid[r][c].(type) {
			case *Unit:
				u := *t
				out[r][c] = &u
			case *TowerMarker:
				m := *t
				out[r][c] = &m
			}
		}
	}
	return out
}
