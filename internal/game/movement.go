package game

// StepMovement advances every unit one cell toward the enemy side and
// resolves contact combat. The whole step is computed into a fresh grid so
// all units appear to move simultaneously; the scan is row-major, which is
// the deterministic tie-break when two units want the same destination
// (first claim wins, the loser holds).
func StepMovement(a *Arena) {
	old := a.grid
	next := make([][]Tile, a.Height)
	for r := range next {
		next[r] = make([]Tile, a.Width)
	}

	// Towers never move; copy their markers first so units see them.
	for r := 0; r < a.Height; r++ {
		for c := 0; c < a.Width; c++ {
			if m, ok := old[r][c].(*TowerMarker); ok {
				next[r][c] = m
			}
		}
	}

	stay := func(r, c int, u *Unit) {
		if next[r][c] == nil {
			next[r][c] = u
		}
	}

	for r := 0; r < a.Height; r++ {
		for c := 0; c < a.Width; c++ {
			u, ok := old[r][c].(*Unit)
			if !ok {
				continue
			}
			// Killed earlier in this same scan; the corpse does not act.
			if u.HP <= 0 {
				continue
			}

			// Player 1 advances right, player 2 left.
			dir := 1
			if !a.IsPlayerOne(u.Owner) {
				dir = -1
			}
			nr, nc := r, c+dir

			if !a.InBounds(nr, nc) {
				stay(r, c, u)
				continue
			}

			// The river is impassable outside the bridge rows.
			if a.IsRiverColumn(nc) && !a.IsBridgeCell(nr, nc) {
				stay(r, c, u)
				continue
			}

			// Look ahead in the grid under construction first, falling
			// back to the old grid for units that have not resolved yet.
			front := next[nr][nc]
			if front == nil {
				front = old[nr][nc]
			}

			if front == nil {
				if next[nr][nc] == nil {
					next[nr][nc] = u
				} else {
					stay(r, c, u)
				}
				continue
			}

			switch f := front.(type) {
			case *TowerMarker:
				AttackTower(a, u, f)
				stay(r, c, u)
			case *Unit:
				if IsEnemy(u.Owner, f.Owner) {
					// Materialize the target into the next grid so the
					// damage lands on the surviving copy. The attacker
					// holds even if the hit kills: a cleared cell is not
					// entered in the same tick.
					if next[nr][nc] == nil {
						next[nr][nc] = f
					}
					AttackUnit(u, next, nr, nc)
				}
				stay(r, c, u)
			default:
				stay(r, c, u)
			}
		}
	}

	a.grid = next
}
