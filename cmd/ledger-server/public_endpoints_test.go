package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapstakes/internal/config"
	"snapstakes/internal/store"
	"snapstakes/internal/testutil"
)

func TestPublicGameHidesHouseFields(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	gameID := createTestGame(t, st, store.GameConfig{
		Enabled:     true,
		Cost:        100,
		FeePercent:  10,
		Odds:        []float64{0.1, 0.2},
		Multipliers: []float64{5, 2},
	})
	router := newTestRouter(st, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/public/games/"+gameID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["game_id"] != gameID {
		t.Fatalf("expected game_id %q, got %v", gameID, body["game_id"])
	}
	if body["cost"].(float64) != 100 {
		t.Fatalf("expected cost 100, got %v", body["cost"])
	}
	if _, ok := body["odds"]; ok {
		t.Fatalf("odds must not leak into the public view: %v", body)
	}
	if _, ok := body["fee_percent"]; ok {
		t.Fatalf("fee_percent must not leak into the public view: %v", body)
	}
}

func TestPublicGameNotFound(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	router := newTestRouter(st, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/public/games/no-such-game", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPublicPhoto(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	photoID := createTestPhoto(t, st, "sunset")
	router := newTestRouter(st, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/public/photos/"+photoID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["title"] != "sunset" {
		t.Fatalf("expected title sunset, got %v", body["title"])
	}
	if body["votes"].(float64) != 0 {
		t.Fatalf("expected zero votes, got %v", body["votes"])
	}
}
