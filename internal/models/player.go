// Package models holds the records shared between the persistence layer
// and the server surface.
package models

// PlayerAccount is the durable per-player record. Only progression fields
// live here; match state (energy, cooldowns) is rebuilt per match and never
// persisted.
type PlayerAccount struct {
	Username       string   `json:"username"`
	HashedPassword string   `json:"hashed_password,omitempty"`
	Cards          []string `json:"cards"`
	Deck           []string `json:"deck"`
	Coins          int      `json:"coins"`
	Wins           int      `json:"wins"`
	Trophies       int      `json:"trophies"`
	ArenaLevel     int      `json:"arena_level"`
}
