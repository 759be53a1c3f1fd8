package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Anthonyf2008/clash-royal/internal/game"
	"github.com/Anthonyf2008/clash-royal/internal/render"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// wsMsg is the envelope pushed to spectators.
type wsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// NewRouter exposes the match store over HTTP.
func NewRouter(store *Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/matches", store.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}/deploy", store.handleDeploy).Methods(http.MethodPost)
	r.HandleFunc("/matches/{id}/state", store.handleState).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id}/board", store.handleBoard).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id}/watch", store.handleWatch).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id}", store.handleEnd).Methods(http.MethodDelete)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

type createRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2,omitempty"`
	VsAI    bool   `json:"vs_ai,omitempty"`
}

type createResponse struct {
	SessionID string `json:"session_id"`
	MatchID   string `json:"match_id"`
}

func (s *Store) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Player1 == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "player1 required"})
		return
	}

	sess, err := s.Create(req.Player1, req.Player2, req.VsAI)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{SessionID: sess.ID, MatchID: sess.Match.ID})
}

type deployRequest struct {
	Player string `json:"player"`
	Card   string `json:"card"`
	Pos    string `json:"pos"`
}

func (s *Store) handleDeploy(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Get(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such match"})
		return
	}

	var req deployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request body"})
		return
	}

	// Rejections are part of normal play (players probe invalid moves),
	// so they come back 200 with ok=false and the reason.
	writeJSON(w, http.StatusOK, sess.Match.Deploy(req.Player, req.Pos, req.Card))
}

func (s *Store) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Get(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such match"})
		return
	}
	writeJSON(w, http.StatusOK, sess.Match.Snapshot())
}

func (s *Store) handleBoard(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Get(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such match"})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.Board(sess.Match.Snapshot())))
}

func (s *Store) handleEnd(w http.ResponseWriter, r *http.Request) {
	if !s.End(mux.Vars(r)["id"]) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such match"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ended": true})
}

func (s *Store) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "no such match", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	// Seed the spectator before it joins the broadcast set; once
	// registered, the conn is only written by broadcast under sess.mu.
	_ = conn.WriteJSON(wsMsg{Type: "state", Data: sess.Match.Snapshot()})
	sess.addWatcher(conn)
}

func (sess *Session) addWatcher(conn *websocket.Conn) {
	sess.mu.Lock()
	sess.watchers[conn] = true
	sess.mu.Unlock()
}

// broadcastState is the realtime loop's onTick callback. It runs outside
// the match lock on an already-copied snapshot.
func (sess *Session) broadcastState(snap game.Snapshot) {
	sess.broadcast(wsMsg{Type: "state", Data: snap})
}

func (sess *Session) broadcastEnd(winner *game.Player) {
	sess.broadcast(wsMsg{Type: "end", Data: map[string]string{
		"winner": winner.ID,
		"name":   winner.Name,
	}})
}

func (sess *Session) broadcast(msg wsMsg) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	for conn := range sess.watchers {
		if err := conn.WriteJSON(msg); err != nil {
			conn.Close()
			delete(sess.watchers, conn)
		}
	}
}

func (sess *Session) closeWatchers() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	for conn := range sess.watchers {
		conn.Close()
		delete(sess.watchers, conn)
	}
}
