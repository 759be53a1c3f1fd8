package render

import (
	"strings"
	"testing"

	"github.com/Anthonyf2008/clash-royal/internal/game"
)

func newTestSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	deck := []string{"knight", "archer", "giant", "mini_pekka", "fireball"}
	m := game.NewMatch(game.NewPlayer("alice", "Alice", deck), game.NewPlayer("bob", "Bob", deck))
	return m.Snapshot()
}

func TestHPBar3(t *testing.T) {
	tests := []struct {
		name    string
		current int
		max     int
		want    string
	}{
		{"Full", 1500, 1500, barHigh + barHigh + barHigh},
		{"High", 1100, 1500, barHigh + barHigh + barHigh},
		{"Mid", 700, 1500, barMid + barMid + barEmpty},
		{"ExactTwoThirds", 990, 1500, barMid + barMid + barEmpty},
		{"Low", 300, 1500, barLow + barEmpty + barEmpty},
		{"Dead", 0, 1500, barEmpty + barEmpty + barEmpty},
		{"ZeroMax", 100, 0, barEmpty + barEmpty + barEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hpBar3(tt.current, tt.max); got != tt.want {
				t.Errorf("hpBar3(%d, %d) = %q, want %q", tt.current, tt.max, got, tt.want)
			}
		})
	}
}

func TestEnergyBar(t *testing.T) {
	if got := energyBar(5); got != strings.Repeat(energyFull, 5)+strings.Repeat(energyEmpty, 5) {
		t.Errorf("energyBar(5) = %q", got)
	}
	if got := energyBar(0); got != strings.Repeat(energyEmpty, game.MaxEnergy) {
		t.Errorf("energyBar(0) = %q", got)
	}
	if got := energyBar(99); got != strings.Repeat(energyFull, game.MaxEnergy) {
		t.Errorf("energyBar should cap at max, got %q", got)
	}
	if got := energyBar(-3); got != strings.Repeat(energyEmpty, game.MaxEnergy) {
		t.Errorf("energyBar should floor at zero, got %q", got)
	}
}

func TestBoard(t *testing.T) {
	s := newTestSnapshot(t)
	out := Board(s)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, the grid rows, a blank line, two summary lines, two energy
	// lines.
	want := 1 + s.Height + 1 + 2 + 2
	if len(lines) != want {
		t.Fatalf("board has %d lines, want %d", len(lines), want)
	}
	if !strings.HasPrefix(lines[1], "A") || !strings.HasPrefix(lines[s.Height], "J") {
		t.Error("row labels missing")
	}
	for _, glyph := range []string{riverGlyph, bridgeGlyph, p1Terrain, p2Terrain} {
		if !strings.Contains(out, glyph) {
			t.Errorf("board missing terrain glyph %q", glyph)
		}
	}
	if !strings.Contains(out, "P1 Alice:") || !strings.Contains(out, "P2 Bob:") {
		t.Error("energy lines missing")
	}
}

func TestBoardShowsUnits(t *testing.T) {
	deck := []string{"knight"}
	m := game.NewMatch(game.NewPlayer("alice", "Alice", deck), game.NewPlayer("bob", "Bob", deck))
	if res := m.Deploy("alice", "A1", "knight"); !res.OK {
		t.Fatalf("deploy failed: %q", res.Reason)
	}

	knight, _ := m.Arena.Get(0, 0).(*game.Unit)
	if !strings.Contains(Board(m.Snapshot()), knight.Glyph) {
		t.Error("deployed unit glyph missing from the board")
	}
}

func TestTowerSummary(t *testing.T) {
	deck := []string{"knight"}
	m := game.NewMatch(game.NewPlayer("alice", "Alice", deck), game.NewPlayer("bob", "Bob", deck))
	m.Arena.DamageTower("alice", game.TowerLeft, 800) // down to mid

	out := TowerSummary(m.Snapshot())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("summary has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "L"+barMid+barMid+barEmpty) {
		t.Errorf("damaged flank bar missing: %q", lines[0])
	}
	if !strings.Contains(lines[1], "L"+barHigh+barHigh+barHigh) {
		t.Errorf("untouched flank bar missing: %q", lines[1])
	}
}

func TestASCII(t *testing.T) {
	s := newTestSnapshot(t)
	out := ASCII(s)
	lines := strings.Split(out, "\n")

	if len(lines) != s.Height+2 {
		t.Fatalf("ascii board has %d lines, want %d", len(lines), s.Height+2)
	}
	border := "+" + strings.Repeat("-", s.Width) + "+"
	if lines[0] != border || lines[len(lines)-1] != border {
		t.Error("borders malformed")
	}
	// Only the eight tower cells are occupied on a fresh board.
	if got := strings.Count(out, "X"); got != 8 {
		t.Errorf("occupied cells = %d, want 8", got)
	}
}
