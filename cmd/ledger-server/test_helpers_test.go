package main

import (
	"context"
	"strconv"
	"testing"
	"time"

	"snapstakes/internal/config"
	"snapstakes/internal/ledger"
	"snapstakes/internal/store"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	unitCost := cfg.VoteUnitCost
	if unitCost == 0 {
		unitCost = 10
	}
	svc := ledger.NewService(st, unitCost)
	return newRouter(st, svc, cfg)
}

func createTestAccount(t *testing.T, st *store.Store, balance int64) string {
	t.Helper()
	id := "acct_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := st.EnsureAccount(context.Background(), id, balance, store.RoleStandard); err != nil {
		t.Fatalf("ensure account: %v", err)
	}
	return id
}

func createTestGame(t *testing.T, st *store.Store, g store.GameConfig) string {
	t.Helper()
	if g.ID == "" {
		g.ID = "game_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if err := st.InsertGameConfig(context.Background(), g); err != nil {
		t.Fatalf("insert game config: %v", err)
	}
	return g.ID
}

func createTestPhoto(t *testing.T, st *store.Store, title string) string {
	t.Helper()
	p := store.Photo{ID: store.NewID(), Title: title}
	if err := st.InsertPhoto(context.Background(), p); err != nil {
		t.Fatalf("insert photo: %v", err)
	}
	return p.ID
}
