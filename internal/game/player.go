package game

import "github.com/Anthonyf2008/clash-royal/internal/cards"

const (
	StartingEnergy = 5
	MaxEnergy      = 10
	EnergyRegen    = 1

	// DefaultCooldown is how many cooldown ticks a card sits out after
	// being played.
	DefaultCooldown = 2
)

// Player is one match participant. The automated opponent uses the same
// type with IsAI set; nothing in the engine distinguishes the two. The
// progression counters are written back by the persistence layer after a
// match and are inert during simulation.
type Player struct {
	ID   string
	Name string
	IsAI bool

	Energy    int
	Cooldowns map[string]int

	Cards []string // unlocked
	Deck  []string // active subset of Cards

	Coins      int
	Wins       int
	Trophies   int
	ArenaLevel int
}

// NewPlayer creates a match participant with the starting energy and the
// given unlocked cards doubling as the initial deck.
func NewPlayer(id, name string, unlocked []string) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Energy:     StartingEnergy,
		Cooldowns:  make(map[string]int),
		Cards:      append([]string(nil), unlocked...),
		Deck:       append([]string(nil), unlocked...),
		ArenaLevel: 1,
	}
}

// HasCard reports whether the card is in the active deck.
func (p *Player) HasCard(name string) bool {
	for _, c := range p.Deck {
		if c == name {
			return true
		}
	}
	return false
}

// CanPlay reports whether the card is affordable and off cooldown.
func (p *Player) CanPlay(c cards.Card) bool {
	if c.Cost > p.Energy {
		return false
	}
	_, cooling := p.Cooldowns[c.Name]
	return !cooling
}

// ApplyCost deducts the card's cost. The caller must have checked CanPlay
// under the match lock; re-validating here would just double-check the same
// state.
func (p *Player) ApplyCost(c cards.Card) {
	p.Energy -= c.Cost
	if p.Energy < 0 {
		p.Energy = 0
	}
}

// RegenEnergy adds the fixed regen increment, capped at the maximum.
func (p *Player) RegenEnergy() {
	p.Energy += EnergyRegen
	if p.Energy > MaxEnergy {
		p.Energy = MaxEnergy
	}
}

// AddCooldown puts a card on cooldown for the given number of ticks,
// overwriting any remaining timer.
func (p *Player) AddCooldown(card string, ticks int) {
	p.Cooldowns[card] = ticks
}

// TickCooldowns decrements every timer, dropping entries that reach zero.
func (p *Player) TickCooldowns() {
	for name := range p.Cooldowns {
		p.Cooldowns[name]--
		if p.Cooldowns[name] <= 0 {
			delete(p.Cooldowns, name)
		}
	}
}
