package game

import (
	"testing"
	"time"
)

func TestAutoPlayDeploys(t *testing.T) {
	m := newTestMatch()
	rng := NewRNG(7)

	res, ok := AutoPlay(m, p1, rng)
	if !ok {
		t.Fatalf("auto play found nothing: %q", res.Reason)
	}
	if res.Col >= m.Arena.RiverLeftCol() {
		t.Errorf("auto play deployed at col %d, past its own side", res.Col)
	}
	u, isUnit := m.Arena.Get(res.Row, res.Col).(*Unit)
	if !isUnit || u.Owner != p1 {
		t.Fatal("auto play result does not match the grid")
	}
	if m.Players[0].Energy >= StartingEnergy {
		t.Error("auto play should have spent energy")
	}
}

func TestAutoPlayIsDeterministic(t *testing.T) {
	a, _ := AutoPlay(newTestMatch(), p1, NewRNG(99))
	b, _ := AutoPlay(newTestMatch(), p1, NewRNG(99))
	if a.Card != b.Card || a.Row != b.Row || a.Col != b.Col {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestAutoPlayConcurrentWithLoop(t *testing.T) {
	m := newTestMatch()
	m.StartRealtimeLoop(nil, nil)
	defer m.End()

	// Hammer the public play path while the loop regens and ticks; the
	// race detector flags any player-state read outside the match lock.
	rng := NewRNG(3)
	deployed := 0
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := AutoPlay(m, p1, rng); ok {
			deployed++
		}
	}
	if deployed == 0 {
		t.Error("no deploy landed while the loop ran")
	}
}

func TestPlayableCards(t *testing.T) {
	m := newTestMatch()

	// All five deck cards cost at most the starting energy.
	if got := m.PlayableCards(p1); len(got) != 5 {
		t.Fatalf("playable = %d cards, want 5", len(got))
	}

	m.Players[0].Energy = 1
	got := m.PlayableCards(p1)
	if len(got) != 1 || got[0].Name != "skeletons" {
		t.Errorf("playable at 1 energy = %v, want just skeletons", got)
	}

	m.Players[0].AddCooldown("skeletons", 2)
	if got := m.PlayableCards(p1); len(got) != 0 {
		t.Errorf("playable = %v, want none with the last card cooling", got)
	}

	if m.PlayableCards("stranger") != nil {
		t.Error("stranger should have no playable cards")
	}
	m.End()
	m.Players[0].Energy = MaxEnergy
	if m.PlayableCards(p1) != nil {
		t.Error("ended match should have no playable cards")
	}
}

func TestAutoPlayNothingPlayable(t *testing.T) {
	m := newTestMatch()
	m.Players[0].Energy = 0

	if _, ok := AutoPlay(m, p1, NewRNG(1)); ok {
		t.Error("auto play deployed with zero energy")
	}
	if _, ok := AutoPlay(m, "stranger", NewRNG(1)); ok {
		t.Error("auto play acted for a non-participant")
	}

	m.End()
	m.Players[0].Energy = MaxEnergy
	if _, ok := AutoPlay(m, p1, NewRNG(1)); ok {
		t.Error("auto play acted on an ended match")
	}
}
