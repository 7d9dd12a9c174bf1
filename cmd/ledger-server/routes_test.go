package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapstakes/internal/config"
	"snapstakes/internal/testutil"
)

func TestRoutesMountedAndHealth(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	if err := st.EnsureDefaultGames(context.Background()); err != nil {
		t.Fatalf("ensure games: %v", err)
	}
	router := newTestRouter(st, config.ServerConfig{AdminAPIKey: "admin-key"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /healthz 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/public/games", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /api/public/games 200, got %d", w.Code)
	}

	// Player routes require the account header.
	req = httptest.NewRequest(http.MethodPost, "/api/play", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected /api/play without account 401, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/plays", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected /api/admin/plays without key 401, got %d", w.Code)
	}
}
