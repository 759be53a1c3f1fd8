package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Anthonyf2008/clash-royal/internal/persistence"
)

func newTestServer(t *testing.T) (*Store, *httptest.Server) {
	t.Helper()
	persist, err := persistence.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(persist, 1)
	srv := httptest.NewServer(NewRouter(store))
	t.Cleanup(srv.Close)
	return store, srv
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func createMatch(t *testing.T, store *Store, srv *httptest.Server, req createRequest) createResponse {
	t.Helper()
	resp := postJSON(t, srv.URL+"/matches", req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created createResponse
	decodeJSON(t, resp, &created)
	t.Cleanup(func() { store.End(created.SessionID) })
	return created
}

func TestCreateMatch(t *testing.T) {
	t.Run("VsAI", func(t *testing.T) {
		store, srv := newTestServer(t)
		created := createMatch(t, store, srv, createRequest{Player1: "alice", VsAI: true})
		if created.SessionID == "" || created.MatchID == "" {
			t.Fatal("create returned empty ids")
		}

		sess, ok := store.Get(created.SessionID)
		if !ok {
			t.Fatal("session not registered")
		}
		if sess.Match.Players[1].ID != AIPlayerID || !sess.Match.Players[1].IsAI {
			t.Error("second seat should be the automated opponent")
		}
	})

	t.Run("TwoPlayers", func(t *testing.T) {
		store, srv := newTestServer(t)
		created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})
		sess, _ := store.Get(created.SessionID)
		if sess.Match.Players[1].ID != "bob" {
			t.Error("second seat should be the named opponent")
		}
	})

	t.Run("Rejections", func(t *testing.T) {
		_, srv := newTestServer(t)
		for name, req := range map[string]createRequest{
			"MissingPlayer1": {},
			"SamePlayer":     {Player1: "alice", Player2: "alice"},
			"NoOpponent":     {Player1: "alice"},
		} {
			resp := postJSON(t, srv.URL+"/matches", req)
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("%s: status = %d, want 400", name, resp.StatusCode)
			}
		}
	})
}

func TestDeployEndpoint(t *testing.T) {
	store, srv := newTestServer(t)
	created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})
	url := srv.URL + "/matches/" + created.SessionID + "/deploy"

	t.Run("OK", func(t *testing.T) {
		resp := postJSON(t, url, deployRequest{Player: "alice", Card: "knight", Pos: "A1"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		var res struct {
			OK     bool   `json:"ok"`
			Reason string `json:"reason"`
		}
		decodeJSON(t, resp, &res)
		if !res.OK {
			t.Fatalf("deploy rejected: %q", res.Reason)
		}
	})

	t.Run("RejectionIs200", func(t *testing.T) {
		resp := postJSON(t, url, deployRequest{Player: "alice", Card: "knight", Pos: "A8"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200 for a game rejection", resp.StatusCode)
		}
		var res struct {
			OK     bool   `json:"ok"`
			Reason string `json:"reason"`
		}
		decodeJSON(t, resp, &res)
		if res.OK || res.Reason == "" {
			t.Error("rejected deploy should carry ok=false and a reason")
		}
	})

	t.Run("UnknownMatch", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/matches/nope/deploy", deployRequest{Player: "alice", Card: "knight", Pos: "A1"})
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("BadBody", func(t *testing.T) {
		resp, err := http.Post(url, "application/json", strings.NewReader("{"))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestStateEndpoint(t *testing.T) {
	store, srv := newTestServer(t)
	created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})

	resp, err := http.Get(srv.URL + "/matches/" + created.SessionID + "/state")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var state struct {
		MatchID string `json:"match_id"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
		Active  bool   `json:"active"`
	}
	decodeJSON(t, resp, &state)
	if state.MatchID != created.MatchID {
		t.Errorf("match id = %q, want %q", state.MatchID, created.MatchID)
	}
	if state.Width != 16 || state.Height != 10 {
		t.Errorf("arena = %dx%d, want 16x10", state.Width, state.Height)
	}
	if !state.Active {
		t.Error("fresh match should be active")
	}
}

func TestBoardEndpoint(t *testing.T) {
	store, srv := newTestServer(t)
	created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})

	resp, err := http.Get(srv.URL + "/matches/" + created.SessionID + "/board")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "P1 alice:") {
		t.Error("board text missing the energy line")
	}
}

func TestEndEndpoint(t *testing.T) {
	store, srv := newTestServer(t)
	created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})
	url := srv.URL + "/matches/" + created.SessionID

	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, ok := store.Get(created.SessionID); ok {
		t.Error("ended session still registered")
	}

	// A second delete, and any further access, is a 404.
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
	stateResp, err := http.Get(url + "/state")
	if err != nil {
		t.Fatal(err)
	}
	stateResp.Body.Close()
	if stateResp.StatusCode != http.StatusNotFound {
		t.Errorf("state after end status = %d, want 404", stateResp.StatusCode)
	}
}

func TestWatchEndpoint(t *testing.T) {
	store, srv := newTestServer(t)
	created := createMatch(t, store, srv, createRequest{Player1: "alice", Player2: "bob"})

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/matches/" + created.SessionID + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// The first frame is the seeded state.
	var msg struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "state" {
		t.Errorf("first frame type = %q, want state", msg.Type)
	}
	var state struct {
		MatchID string `json:"match_id"`
	}
	if err := json.Unmarshal(msg.Data, &state); err != nil {
		t.Fatal(err)
	}
	if state.MatchID != created.MatchID {
		t.Errorf("seeded state match id = %q, want %q", state.MatchID, created.MatchID)
	}

	// The watcher keeps receiving loop broadcasts after the seed frame.
	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("no broadcast after the seed frame: %v", err)
	}
	if msg.Type != "state" {
		t.Errorf("broadcast frame type = %q, want state", msg.Type)
	}
}
