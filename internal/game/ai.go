package game

import (
	"math/rand"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
)

// aiPlacementTries bounds the random tile search per turn.
const aiPlacementTries = 80

// AutoPlay is the automated opponent's whole decision policy: pick a random
// playable non-spell card from the deck, then probe random cells through
// the public Deploy path until one sticks. It touches no engine internals,
// so it obeys exactly the rules a human command does. Returns the result of
// the successful deploy, or ok=false when the AI had nothing to play or
// found no legal tile.
func AutoPlay(m *Match, ownerID string, rng *rand.Rand) (DeployResult, bool) {
	var playable []cards.Card
	for _, c := range m.PlayableCards(ownerID) {
		if c.Type != cards.TypeSpell {
			playable = append(playable, c)
		}
	}
	if len(playable) == 0 {
		return DeployResult{}, false
	}

	card := playable[rng.Intn(len(playable))]

	for i := 0; i < aiPlacementTries; i++ {
		r := rng.Intn(m.Arena.Height)
		c := rng.Intn(m.Arena.Width)
		res := m.Deploy(ownerID, FormatCoord(r, c), card.Name)
		if res.OK {
			return res, true
		}
		// Anything other than a positional rejection will not improve
		// with a different tile.
		switch res.Reason {
		case ReasonOutOfBounds, ReasonOccupied, ReasonRiver, ReasonTowerCell, ReasonWrongSide:
		default:
			return res, false
		}
	}
	return DeployResult{}, false
}

// NewRNG builds a seeded source for reproducible automated play. A zero
// seed is bumped so callers can pass an unset config value.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
