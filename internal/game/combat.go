package game

const (
	FlankTowerRange  = 6
	FlankTowerDamage = 90
	KingTowerRange   = 7
	KingTowerDamage  = 120
)

// CanAttack gates every damage application between tiles.
func CanAttack(attackerOwner, targetOwner string) bool {
	return IsEnemy(attackerOwner, targetOwner)
}

// AttackUnit applies the attacker's damage to the unit at (row, col) on the
// given grid (the next-tick grid during movement). Same-owner targets and
// tower markers are untouched. A target at or below zero HP is removed.
func AttackUnit(attacker *Unit, grid [][]Tile, row, col int) {
	target, ok := grid[row][col].(*Unit)
	if !ok {
		return
	}
	if !CanAttack(attacker.Owner, target.Owner) {
		return
	}

	target.HP -= attacker.Damage
	if target.HP <= 0 {
		grid[row][col] = nil
	}
}

// AttackTower routes unit-on-tower damage through the arena's authoritative
// tower table.
func AttackTower(a *Arena, attacker *Unit, marker *TowerMarker) {
	if marker == nil {
		return
	}
	if !CanAttack(attacker.Owner, marker.Owner) {
		return
	}
	a.DamageTower(marker.Owner, marker.Slot, attacker.Damage)
}

func towerProfile(slot TowerSlot) (rng, dmg int) {
	if slot == TowerKing {
		return KingTowerRange, KingTowerDamage
	}
	return FlankTowerRange, FlankTowerDamage
}

// TowerAttacks fires every living tower at its nearest enemy unit once.
// The king stays passive until activated. Distance is Manhattan, minimized
// over the tower's cells; ties go to the first unit found in row-major
// order. A tower with no enemy in range does nothing this tick.
func TowerAttacks(a *Arena) {
	for _, owner := range a.Owners() {
		for _, slot := range towerSlots {
			t := a.Tower(owner, slot)
			if t == nil || t.HP <= 0 {
				continue
			}
			if slot == TowerKing && !t.Active {
				continue
			}

			rng, dmg := towerProfile(slot)

			var enemies []Cell
			a.EachUnit(func(r, c int, u *Unit) {
				if IsEnemy(owner, u.Owner) {
					enemies = append(enemies, Cell{r, c})
				}
			})
			if len(enemies) == 0 {
				continue
			}

			best := Cell{-1, -1}
			bestDist := rng + 1
			for _, e := range enemies {
				for _, tc := range t.Cells {
					d := abs(e.Row-tc.Row) + abs(e.Col-tc.Col)
					if d < bestDist {
						bestDist = d
						best = e
					}
				}
			}
			if best.Row < 0 {
				continue
			}

			target, ok := a.Get(best.Row, best.Col).(*Unit)
			if !ok {
				continue
			}
			target.HP -= dmg
			if target.HP <= 0 {
				a.Set(best.Row, best.Col, nil)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
