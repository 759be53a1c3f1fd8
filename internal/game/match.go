package game

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
)

// Deploy rejection reasons produced above the placement predicate.
const (
	ReasonMatchOver     = "match is over"
	ReasonNotInMatch    = "not a participant in this match"
	ReasonBadCoord      = "invalid position, use a label like C4"
	ReasonUnknownCard   = "unknown card"
	ReasonNotInDeck     = "card not in your deck"
	ReasonNotEnough     = "not enough energy"
	ReasonOnCooldown    = "card on cooldown"
	ReasonBadTemplate   = "malformed unit"
	ReasonSpellRejected = "spells cannot be placed on the grid"
)

// DeployResult reports the outcome of a deploy command. Reason is empty on
// success and a short, specific rejection otherwise; rejections are normal
// control flow, never errors.
type DeployResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
	Card   string `json:"card,omitempty"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Match owns two players, one arena and the tick sequencing. Every state
// transition happens under mu: player commands and the realtime loop
// serialize on it.
type Match struct {
	ID      string
	Players [2]*Player
	Arena   *Arena

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
}

// NewMatch builds an active match on a default-size arena.
func NewMatch(p1, p2 *Player) *Match {
	return &Match{
		ID:      uuid.NewString(),
		Players: [2]*Player{p1, p2},
		Arena:   NewArena(DefaultWidth, DefaultHeight, p1.ID, p2.ID),
		active:  true,
	}
}

// Active reports whether the match is still running.
func (m *Match) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// PlayerByID returns the participant with the given id, or nil.
func (m *Match) PlayerByID(id string) *Player {
	for _, p := range m.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OpponentOf returns the other participant, or nil for an unknown id.
func (m *Match) OpponentOf(id string) *Player {
	switch id {
	case m.Players[0].ID:
		return m.Players[1]
	case m.Players[1].ID:
		return m.Players[0]
	}
	return nil
}

// NewUnitFromCard converts a troop or building card into a grid unit owned
// by owner. Spells do not create units and yield nil.
func NewUnitFromCard(c cards.Card, owner string) *Unit {
	if c.Type == cards.TypeSpell {
		return nil
	}
	category := CategoryTroop
	if c.Type == cards.TypeBuilding {
		category = CategoryBuilding
	}
	return &Unit{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Owner:    owner,
		HP:       c.HP,
		Damage:   c.Damage,
		Range:    c.Range,
		Speed:    c.Speed,
		Category: category,
		Special:  c.Special,
		Glyph:    c.Glyph,
	}
}

// PlaceUnit validates the cell through the deploy rule checker and writes
// the unit to the grid. It deducts no cost: callers spend energy and set
// cooldowns only after a true return, so a rejected placement aborts
// cleanly. Zero stats are stamped with engine defaults.
func (m *Match) PlaceUnit(owner string, row, col int, u *Unit) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.placeUnitLocked(owner, row, col, u)
}

func (m *Match) placeUnitLocked(owner string, row, col int, u *Unit) bool {
	if u == nil || !m.active {
		return false
	}
	if !IsValidDeploy(m.Arena, owner, row, col) {
		return false
	}

	u.Owner = owner
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.HP == 0 {
		u.HP = 100
	}
	if u.Damage == 0 {
		u.Damage = 50
	}
	if u.Range == 0 {
		u.Range = 1
	}
	if u.Speed == 0 {
		u.Speed = 1
	}
	if u.Glyph == "" {
		u.Glyph = defaultUnitGlyph
	}

	m.Arena.Set(row, col, u)
	return true
}

// Deploy is the full command path: parse the coordinate, resolve the card,
// check deck membership, energy and cooldown, place the unit (or resolve a
// spell), then charge cost and cooldown. Cost is only applied after the
// placement succeeded.
func (m *Match) Deploy(owner, coordText, cardID string) DeployResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return DeployResult{Reason: ReasonMatchOver}
	}

	player := m.PlayerByID(owner)
	if player == nil {
		return DeployResult{Reason: ReasonNotInMatch}
	}

	card, ok := cards.Get(cardID)
	if !ok {
		return DeployResult{Reason: ReasonUnknownCard, Card: cardID}
	}
	if !player.HasCard(cardID) {
		return DeployResult{Reason: ReasonNotInDeck, Card: cardID}
	}
	if card.Cost > player.Energy {
		return DeployResult{Reason: ReasonNotEnough, Card: cardID}
	}
	if !player.CanPlay(card) {
		return DeployResult{Reason: ReasonOnCooldown, Card: cardID}
	}

	// Spells resolve as effects and never touch the grid.
	if card.Type == cards.TypeSpell {
		ApplySpellEffect(card, player, m.OpponentOf(owner))
		player.ApplyCost(card)
		player.AddCooldown(card.Name, DefaultCooldown)
		return DeployResult{OK: true, Card: cardID}
	}

	row, col, ok := ParseCoord(coordText)
	if !ok {
		return DeployResult{Reason: ReasonBadCoord}
	}

	if reason := DeployReason(m.Arena, owner, row, col); reason != "" {
		return DeployResult{Reason: reason, Card: cardID, Row: row, Col: col}
	}
	if !m.placeUnitLocked(owner, row, col, NewUnitFromCard(card, owner)) {
		return DeployResult{Reason: ReasonBadTemplate, Card: cardID, Row: row, Col: col}
	}

	player.ApplyCost(card)
	player.AddCooldown(card.Name, DefaultCooldown)
	return DeployResult{OK: true, Card: cardID, Row: row, Col: col}
}

// PlayableCards returns the deck cards owner can afford and has off
// cooldown, snapshotted under the match lock. Callers reading player state
// outside a command must go through here rather than touching Player
// fields directly. Empty for unknown owners and ended matches.
func (m *Match) PlayableCards(owner string) []cards.Card {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return nil
	}
	player := m.PlayerByID(owner)
	if player == nil {
		return nil
	}

	var out []cards.Card
	for _, name := range player.Deck {
		if c, ok := cards.Get(name); ok && player.CanPlay(c) {
			out = append(out, c)
		}
	}
	return out
}

// StepTick advances one simulation step: movement and contact damage first,
// ranged tower fire second. No-op once the match has ended.
func (m *Match) StepTick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTickLocked()
}

func (m *Match) stepTickLocked() {
	if !m.active {
		return
	}
	StepMovement(m.Arena)
	TowerAttacks(m.Arena)
}

// CheckWin returns the winner if either king is dead, else nil. The first
// dead king in player-1-first scan order loses.
func (m *Match) CheckWin() *Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkWinLocked()
}

func (m *Match) checkWinLocked() *Player {
	deadOwner, ok := m.Arena.AnyKingDead()
	if !ok {
		return nil
	}
	return m.OpponentOf(deadOwner)
}

// End flags the match inactive and cancels its realtime loop. Safe to call
// any number of times.
func (m *Match) End() {
	m.mu.Lock()
	active := m.active
	m.active = false
	cancel := m.cancel
	m.mu.Unlock()

	if active && cancel != nil {
		cancel()
	}
}
