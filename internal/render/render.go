// Package render projects match snapshots into board text for chat-style
// output. It is read-only: every function consumes a game.Snapshot taken
// under the match lock, never live state.
package render

import (
	"fmt"
	"strings"

	"github.com/Anthonyf2008/clash-royal/internal/game"
)

const (
	p1Terrain    = "🟩"
	p2Terrain    = "🟪"
	riverGlyph   = "🟦"
	bridgeGlyph  = "🟫"
	energyFull   = "🔮"
	energyEmpty  = "⚫"
	barHigh      = "🟩"
	barMid       = "🟨"
	barLow       = "🟥"
	barEmpty     = "⬛"
)

// hpBar3 is the 3-segment tower HP bar.
func hpBar3(current, max int) string {
	if max <= 0 || current <= 0 {
		return barEmpty + barEmpty + barEmpty
	}
	ratio := float64(current) / float64(max)
	switch {
	case ratio > 0.66:
		return barHigh + barHigh + barHigh
	case ratio > 0.33:
		return barMid + barMid + barEmpty
	default:
		return barLow + barEmpty + barEmpty
	}
}

// energyBar renders current energy out of the fixed maximum.
func energyBar(current int) string {
	if current < 0 {
		current = 0
	}
	if current > game.MaxEnergy {
		current = game.MaxEnergy
	}
	return strings.Repeat(energyFull, current) + strings.Repeat(energyEmpty, game.MaxEnergy-current)
}

func isRiverCol(s game.Snapshot, col int) bool {
	return col == s.RiverCols[0] || col == s.RiverCols[1]
}

func isBridgeRow(s game.Snapshot, row int) bool {
	return row == s.BridgeRows[0] || row == s.BridgeRows[1]
}

// Board renders the full arena: column header, terrain with river and
// bridges, tile glyphs, tower HP summary and energy bars.
func Board(s game.Snapshot) string {
	var b strings.Builder

	// Column header, 1-based mod 10 to keep the line narrow.
	b.WriteString("   ")
	for c := 0; c < s.Width; c++ {
		fmt.Fprintf(&b, "%d", (c+1)%10)
	}
	b.WriteByte('\n')

	for r := 0; r < s.Height; r++ {
		b.WriteString(string(rune('A'+r)) + "  ")
		for c := 0; c < s.Width; c++ {
			tile := s.Grid[r][c]
			if tile != nil {
				b.WriteString(tile.TileGlyph())
				continue
			}
			switch {
			case isRiverCol(s, c) && isBridgeRow(s, r):
				b.WriteString(bridgeGlyph)
			case isRiverCol(s, c):
				b.WriteString(riverGlyph)
			case c < s.RiverCols[0]:
				b.WriteString(p1Terrain)
			default:
				b.WriteString(p2Terrain)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(TowerSummary(s))
	b.WriteByte('\n')
	for i, p := range s.Players {
		fmt.Fprintf(&b, "P%d %s: %s\n", i+1, p.Name, energyBar(p.Energy))
	}
	return b.String()
}

// TowerSummary renders one HP-bar line per player, like
// "P1 L🟩🟩🟩 K🟩🟩🟩 R🟨🟨⬛".
func TowerSummary(s game.Snapshot) string {
	var b strings.Builder
	for i, p := range s.Players {
		bars := map[game.TowerSlot]string{
			game.TowerLeft:  barEmpty + barEmpty + barEmpty,
			game.TowerRight: barEmpty + barEmpty + barEmpty,
			game.TowerKing:  barEmpty + barEmpty + barEmpty,
		}
		for _, t := range s.Towers[p.ID] {
			bars[t.Slot] = hpBar3(t.HP, t.MaxHP)
		}
		fmt.Fprintf(&b, "P%d L%s K%s R%s", i+1,
			bars[game.TowerLeft], bars[game.TowerKing], bars[game.TowerRight])
		if i == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ASCII is the debug projection: '.' empty, 'X' occupied.
func ASCII(s game.Snapshot) string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", s.Width) + "+"
	b.WriteString(border)
	b.WriteByte('\n')
	for r := 0; r < s.Height; r++ {
		b.WriteByte('|')
		for c := 0; c < s.Width; c++ {
			if s.Grid[r][c] == nil {
				b.WriteByte('.')
			} else {
				b.WriteByte('X')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
