package game

import (
	"context"
	"log"
	"time"
)

const (
	// TickInterval is the simulation cadence (4 ticks/sec).
	TickInterval = 250 * time.Millisecond
	// EnergyInterval paces energy regen and cooldown ticking.
	EnergyInterval = time.Second
	// SnapshotInterval throttles onTick so observers are not spammed
	// every simulation step.
	SnapshotInterval = 1500 * time.Millisecond
)

// StartRealtimeLoop launches the match's background tick goroutine. Each
// tick holds the match lock for energy regen (when its timer elapsed), the
// simulation step and the win check, in that order; the lock is released
// before onTick receives the snapshot since observers tolerate slightly
// stale views. onEnd fires exactly once with the winner. A second call on
// the same match does nothing.
func (m *Match) StartRealtimeLoop(onTick func(Snapshot), onEnd func(*Player)) {
	m.mu.Lock()
	if !m.active || m.cancel != nil {
		m.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.mu.Unlock()

	go m.runLoop(ctx, cancel, onTick, onEnd)
}

func (m *Match) runLoop(ctx context.Context, cancel context.CancelFunc, onTick func(Snapshot), onEnd func(*Player)) {
	defer cancel()
	defer func() {
		// A panicking tick means corrupted simulation state; stop the
		// match instead of ticking on top of it.
		if r := recover(); r != nil {
			log.Printf("[match %s] tick panic, ending match: %v", m.ID, r)
			m.End()
		}
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	var lastEnergy, lastSnapshot time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			snap, observe, winner, running := m.tick(now, &lastEnergy, &lastSnapshot)
			if !running {
				return
			}

			if observe && onTick != nil {
				onTick(snap)
			}
			if winner != nil {
				log.Printf("[match %s] %s wins", m.ID, winner.Name)
				if onEnd != nil {
					onEnd(winner)
				}
				return
			}
		}
	}
}

// tick runs one locked loop iteration: regen when due, simulation step, win
// check, snapshot when due. The unlock is deferred so a panicking step
// releases the lock before the recover handler ends the match.
func (m *Match) tick(now time.Time, lastEnergy, lastSnapshot *time.Time) (snap Snapshot, observe bool, winner *Player, running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return Snapshot{}, false, nil, false
	}

	if now.Sub(*lastEnergy) >= EnergyInterval {
		*lastEnergy = now
		for _, p := range m.Players {
			p.RegenEnergy()
			p.TickCooldowns()
		}
	}

	m.stepTickLocked()

	winner = m.checkWinLocked()
	if winner != nil {
		m.active = false
	}

	observe = winner != nil || now.Sub(*lastSnapshot) >= SnapshotInterval
	if observe {
		*lastSnapshot = now
		snap = m.snapshotLocked()
	}
	return snap, observe, winner, true
}
