// Package persistence stores player accounts as one JSON file per username.
// The simulation core never calls into here; the command layer loads
// accounts before a match and writes progression back after it.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
	"github.com/Anthonyf2008/clash-royal/internal/models"
)

// Store reads and writes accounts under a single data directory.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create player data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(username string) string {
	return filepath.Join(s.dir, username+".json")
}

// Load reads one account and sanitizes its card lists so removed catalog
// cards in old saves never reach the engine.
func (s *Store) Load(username string) (*models.PlayerAccount, error) {
	data, err := os.ReadFile(s.path(username))
	if err != nil {
		return nil, err
	}

	var acc models.PlayerAccount
	if err := json.Unmarshal(data, &acc); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", username, err)
	}
	acc.Username = username
	if acc.ArenaLevel < 1 {
		acc.ArenaLevel = 1
	}
	acc.Deck = EnsureMinDeck(acc.Deck)
	acc.Cards = ensureUnlocked(acc.Cards, acc.Deck)
	return &acc, nil
}

// LoadOrCreate returns the stored account or a fresh one with the starter
// collection.
func (s *Store) LoadOrCreate(username string) (*models.PlayerAccount, error) {
	acc, err := s.Load(username)
	if err == nil {
		return acc, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	acc = &models.PlayerAccount{
		Username:   username,
		Cards:      append([]string(nil), cards.StarterCards...),
		Deck:       EnsureMinDeck(append([]string(nil), cards.StarterCards...)),
		ArenaLevel: 1,
	}
	if err := s.Save(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Save writes the account, hashing the password first when it is still
// plaintext. Bcrypt output is long; anything shorter has not been hashed.
func (s *Store) Save(acc *models.PlayerAccount) error {
	if pw := acc.HashedPassword; pw != "" && len(pw) < 40 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", acc.Username, err)
		}
		acc.HashedPassword = string(hashed)
	}

	data, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account %s: %w", acc.Username, err)
	}
	return os.WriteFile(s.path(acc.Username), data, 0o644)
}

// CheckPassword verifies a login attempt against the stored hash.
func CheckPassword(acc *models.PlayerAccount, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(acc.HashedPassword), []byte(password)) == nil
}

// filterKnown keeps only cards that still exist in the catalog.
func filterKnown(list []string) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		if cards.Exists(c) {
			out = append(out, c)
		}
	}
	return out
}

// EnsureMinDeck drops unknown cards, dedupes preserving order, and refills
// from the defaults up to a 5-card minimum.
func EnsureMinDeck(deck []string) []string {
	deck = filterKnown(deck)

	seen := make(map[string]bool, len(deck))
	deduped := deck[:0]
	for _, c := range deck {
		if !seen[c] {
			seen[c] = true
			deduped = append(deduped, c)
		}
	}
	deck = deduped

	for _, c := range cards.DefaultDeck {
		if len(deck) >= 5 {
			break
		}
		if !seen[c] && cards.Exists(c) {
			seen[c] = true
			deck = append(deck, c)
		}
	}
	if len(deck) < 5 {
		for _, c := range cards.Names() {
			if len(deck) >= 5 {
				break
			}
			if !seen[c] {
				seen[c] = true
				deck = append(deck, c)
			}
		}
	}
	return deck
}

// ensureUnlocked guarantees the unlocked set covers the deck plus the
// default collection.
func ensureUnlocked(unlocked, deck []string) []string {
	unlocked = filterKnown(unlocked)
	have := make(map[string]bool, len(unlocked))
	for _, c := range unlocked {
		have[c] = true
	}
	for _, c := range deck {
		if !have[c] {
			have[c] = true
			unlocked = append(unlocked, c)
		}
	}
	for _, c := range cards.DefaultUnlocked {
		if cards.Exists(c) && !have[c] {
			have[c] = true
			unlocked = append(unlocked, c)
		}
	}
	return unlocked
}

// RecordResult applies a finished match to both accounts and saves them.
func (s *Store) RecordResult(winner, loser *models.PlayerAccount) error {
	winner.Wins++
	winner.Coins += 20
	winner.Trophies += 30
	if loser.Trophies -= 20; loser.Trophies < 0 {
		loser.Trophies = 0
	}
	if err := s.Save(winner); err != nil {
		return err
	}
	return s.Save(loser)
}
