package game

import (
	"strings"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
)

// Marker cooldown labels written by control spells. They occupy the
// opponent's cooldown table like a card would, so they expire through the
// normal TickCooldowns path.
const (
	EffectFrozen  = "frozen"
	EffectStunned = "stunned"
)

// ApplySpellEffect resolves a spell card against the two players. Spells
// never enter the grid; their special tag decides what happens. Unknown
// specials are cost-only plays.
func ApplySpellEffect(card cards.Card, caster, opponent *Player) {
	for _, s := range strings.Fields(card.Special) {
		switch s {
		case "freeze":
			opponent.AddCooldown(EffectFrozen, 1)
		case "stun":
			opponent.AddCooldown(EffectStunned, 1)
		case "buff", "rage":
			caster.Energy += 3
			if caster.Energy > MaxEnergy {
				caster.Energy = MaxEnergy
			}
		}
	}
}
