// Package server is the command layer in front of the simulation core: a
// match registry plus an HTTP/websocket surface. The engine itself holds no
// process-wide state; every live match lives in a Store owned here.
package server

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Anthonyf2008/clash-royal/internal/cards"
	"github.com/Anthonyf2008/clash-royal/internal/game"
	"github.com/Anthonyf2008/clash-royal/internal/models"
	"github.com/Anthonyf2008/clash-royal/internal/persistence"
)

// AIPlayerID is the reserved id of the automated opponent.
const AIPlayerID = "clash-ai"

// aiPlayInterval paces the automated opponent's deploy attempts.
const aiPlayInterval = 2 * time.Second

// Session couples a running match with its spectators and the accounts to
// settle when it ends.
type Session struct {
	ID    string
	Match *game.Match

	accounts map[string]*models.PlayerAccount

	mu       sync.Mutex
	watchers map[*websocket.Conn]bool
}

// Store is the registry of live sessions keyed by session id.
type Store struct {
	persist *persistence.Store
	seed    int64

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore wires the registry to the account store. The seed drives the
// automated opponent's RNG; zero means non-reproducible play.
func NewStore(persist *persistence.Store, seed int64) *Store {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Store{
		persist:  persist,
		seed:     seed,
		sessions: make(map[string]*Session),
	}
}

// Get returns a live session by id.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// playerFromAccount rebuilds a match participant from a stored account.
func playerFromAccount(acc *models.PlayerAccount) *game.Player {
	p := game.NewPlayer(acc.Username, acc.Username, acc.Cards)
	p.Deck = persistence.EnsureMinDeck(acc.Deck)
	p.Coins = acc.Coins
	p.Wins = acc.Wins
	p.Trophies = acc.Trophies
	p.ArenaLevel = acc.ArenaLevel
	return p
}

// Create loads both accounts, builds the match, registers the session and
// starts its realtime loop. When vsAI is set the second participant is the
// built-in random opponent instead of a stored account.
func (s *Store) Create(player1, player2 string, vsAI bool) (*Session, error) {
	acc1, err := s.persist.LoadOrCreate(player1)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", player1, err)
	}
	p1 := playerFromAccount(acc1)

	accounts := map[string]*models.PlayerAccount{player1: acc1}

	var p2 *game.Player
	if vsAI {
		p2 = game.NewPlayer(AIPlayerID, "ClashAI", cards.StarterCards)
		p2.IsAI = true
		p2.Deck = p2.Cards[:5]
	} else {
		if player2 == "" || player2 == player1 {
			return nil, fmt.Errorf("need two distinct players")
		}
		acc2, err := s.persist.LoadOrCreate(player2)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", player2, err)
		}
		p2 = playerFromAccount(acc2)
		accounts[player2] = acc2
	}

	sess := &Session{
		ID:       uuid.NewString(),
		Match:    game.NewMatch(p1, p2),
		accounts: accounts,
		watchers: make(map[*websocket.Conn]bool),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	sess.Match.StartRealtimeLoop(sess.broadcastState, func(winner *game.Player) {
		s.finish(sess, winner)
	})
	if vsAI {
		go s.runAI(sess)
	}

	log.Printf("[session %s] match %s: %s vs %s", sess.ID, sess.Match.ID, p1.Name, p2.Name)
	return sess, nil
}

// End terminates a session's match and drops it from the registry.
func (s *Store) End(id string) bool {
	sess, ok := s.Get(id)
	if !ok {
		return false
	}
	sess.Match.End()
	s.remove(id)
	sess.closeWatchers()
	return true
}

// finish settles progression and tears the session down. Runs on the
// match's loop goroutine via onEnd.
func (s *Store) finish(sess *Session, winner *game.Player) {
	loser := sess.Match.OpponentOf(winner.ID)

	wAcc := sess.accounts[winner.ID]
	var lAcc *models.PlayerAccount
	if loser != nil {
		lAcc = sess.accounts[loser.ID]
	}
	if wAcc != nil && lAcc != nil {
		if err := s.persist.RecordResult(wAcc, lAcc); err != nil {
			log.Printf("[session %s] record result: %v", sess.ID, err)
		}
	} else if wAcc != nil {
		// AI matches only settle the human side.
		wAcc.Wins++
		wAcc.Coins += 20
		wAcc.Trophies += 30
		if err := s.persist.Save(wAcc); err != nil {
			log.Printf("[session %s] save winner: %v", sess.ID, err)
		}
	}

	sess.broadcastEnd(winner)
	s.remove(sess.ID)
	sess.closeWatchers()
}

// runAI drives the automated opponent through the same public Deploy path
// a human command uses, until the match ends.
func (s *Store) runAI(sess *Session) {
	rng := game.NewRNG(s.seed)
	ticker := time.NewTicker(aiPlayInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !sess.Match.Active() {
			return
		}
		if res, ok := game.AutoPlay(sess.Match, AIPlayerID, rng); ok {
			log.Printf("[session %s] ClashAI played %s at %s",
				sess.ID, res.Card, game.FormatCoord(res.Row, res.Col))
		}
	}
}
