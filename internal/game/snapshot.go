package game

// TowerState is a tower's point-in-time public state.
type TowerState struct {
	Slot   TowerSlot `json:"slot"`
	HP     int       `json:"hp"`
	MaxHP  int       `json:"max_hp"`
	Active bool      `json:"active"`
	Cells  []Cell    `json:"cells"`
	Glyph  string    `json:"glyph"`
}

// PlayerState is a participant's point-in-time public state.
type PlayerState struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Energy int    `json:"energy"`
	IsAI   bool   `json:"is_ai"`
}

// Snapshot is a read-only copy of a match's observable state, taken under
// the match lock and safe to render or transmit after it is released.
type Snapshot struct {
	MatchID    string                    `json:"match_id"`
	Width      int                       `json:"width"`
	Height     int                       `json:"height"`
	Grid       [][]Tile                  `json:"grid"`
	Towers     map[string][]TowerState   `json:"towers"`
	Players    [2]PlayerState            `json:"players"`
	RiverCols  [2]int                    `json:"river_cols"`
	BridgeRows [2]int                    `json:"bridge_rows"`
	Active     bool                      `json:"active"`
}

// Snapshot deep-copies the observable match state.
func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Match) snapshotLocked() Snapshot {
	a := m.Arena

	towers := make(map[string][]TowerState, 2)
	for _, owner := range a.Owners() {
		states := make([]TowerState, 0, len(towerSlots))
		for _, slot := range towerSlots {
			t := a.Tower(owner, slot)
			if t == nil {
				continue
			}
			states = append(states, TowerState{
				Slot:   slot,
				HP:     t.HP,
				MaxHP:  t.MaxHP,
				Active: t.Active,
				Cells:  append([]Cell(nil), t.Cells...),
				Glyph:  t.Glyph,
			})
		}
		towers[owner] = states
	}

	var players [2]PlayerState
	for i, p := range m.Players {
		players[i] = PlayerState{ID: p.ID, Name: p.Name, Energy: p.Energy, IsAI: p.IsAI}
	}

	return Snapshot{
		MatchID:    m.ID,
		Width:      a.Width,
		Height:     a.Height,
		Grid:       a.CopyGrid(),
		Towers:     towers,
		Players:    players,
		RiverCols:  a.riverCols,
		BridgeRows: a.bridgeRows,
		Active:     m.active,
	}
}
