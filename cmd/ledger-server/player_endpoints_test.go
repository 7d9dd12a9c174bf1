package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"snapstakes/internal/config"
	"snapstakes/internal/store"
	"snapstakes/internal/testutil"
)

func TestPlayEndpoint(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	accountID := createTestAccount(t, st, 1000)
	// A single certain outcome keeps the response deterministic.
	gameID := createTestGame(t, st, store.GameConfig{
		Enabled:     true,
		Cost:        100,
		FeePercent:  10,
		Odds:        []float64{1.0},
		Multipliers: []float64{2},
	})
	router := newTestRouter(st, config.ServerConfig{})

	body, _ := json.Marshal(map[string]any{"game_id": gameID})
	req := httptest.NewRequest(http.MethodPost, "/api/play", bytes.NewReader(body))
	req.Header.Set("X-Account-ID", accountID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["fee"].(float64) != 10 {
		t.Fatalf("expected fee 10, got %v", resp["fee"])
	}
	if resp["stake"].(float64) != 90 {
		t.Fatalf("expected stake 90, got %v", resp["stake"])
	}
	if resp["award"].(float64) != 180 {
		t.Fatalf("expected award 180, got %v", resp["award"])
	}
	if resp["balance"].(float64) != 1080 {
		t.Fatalf("expected balance 1080, got %v", resp["balance"])
	}
}

func TestPlayEndpointGuards(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	accountID := createTestAccount(t, st, 50)
	disabledID := createTestGame(t, st, store.GameConfig{
		Enabled:     false,
		Cost:        100,
		Odds:        []float64{1.0},
		Multipliers: []float64{2},
	})
	costlyID := createTestGame(t, st, store.GameConfig{
		Enabled:     true,
		Cost:        100,
		Odds:        []float64{1.0},
		Multipliers: []float64{2},
	})
	router := newTestRouter(st, config.ServerConfig{})

	post := func(gameID string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]any{"game_id": gameID})
		req := httptest.NewRequest(http.MethodPost, "/api/play", bytes.NewReader(body))
		req.Header.Set("X-Account-ID", accountID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := post("nope"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown game expected 404, got %d", w.Code)
	}
	if w := post(disabledID); w.Code != http.StatusConflict {
		t.Fatalf("disabled game expected 409, got %d", w.Code)
	}
	if w := post(costlyID); w.Code != http.StatusConflict {
		t.Fatalf("insufficient funds expected 409, got %d", w.Code)
	}
}

func TestVoteEndpoint(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	accountID := createTestAccount(t, st, 100)
	photoID := createTestPhoto(t, st, "portrait")
	router := newTestRouter(st, config.ServerConfig{VoteUnitCost: 10})

	body, _ := json.Marshal(map[string]any{"photo_id": photoID, "count": 3})
	req := httptest.NewRequest(http.MethodPost, "/api/vote", bytes.NewReader(body))
	req.Header.Set("X-Account-ID", accountID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["votes"].(float64) != 3 {
		t.Fatalf("expected votes 3, got %v", resp["votes"])
	}
	if resp["balance"].(float64) != 70 {
		t.Fatalf("expected balance 70, got %v", resp["balance"])
	}
}

func TestWithdrawalEndpoints(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	accountID := createTestAccount(t, st, 500)
	cfg := config.ServerConfig{AdminAPIKey: "admin-key"}
	router := newTestRouter(st, cfg)

	body, _ := json.Marshal(map[string]any{"amount": 200, "destination": "bank:42"})
	req := httptest.NewRequest(http.MethodPost, "/api/withdrawals", bytes.NewReader(body))
	req.Header.Set("X-Account-ID", accountID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created["status"] != store.WithdrawPending {
		t.Fatalf("expected pending, got %v", created["status"])
	}
	requestID := created["id"].(string)

	// Requesting must not debit anything yet.
	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("X-Account-ID", accountID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var me map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if me["balance"].(float64) != 500 {
		t.Fatalf("pending request must not debit, balance %v", me["balance"])
	}

	decision, _ := json.Marshal(map[string]any{"decision": "approve", "tx_ref": "tx-99"})
	req = httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/"+requestID+"/decision", bytes.NewReader(decision))
	req.Header.Set("X-Admin-Key", "admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("decision expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/withdrawals/"+requestID, nil)
	req.Header.Set("X-Account-ID", accountID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get withdrawal expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != store.WithdrawApproved {
		t.Fatalf("expected approved, got %v", got["status"])
	}
	if got["tx_ref"] != "tx-99" {
		t.Fatalf("expected tx_ref tx-99, got %v", got["tx_ref"])
	}

	// A second decision on the same request must fail.
	req = httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/"+requestID+"/decision", bytes.NewReader(decision))
	req.Header.Set("X-Admin-Key", "admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("second decision expected 409, got %d", w.Code)
	}

	// Requests stay private to their owner.
	otherID := createTestAccount(t, st, 10)
	req = httptest.NewRequest(http.MethodGet, "/api/withdrawals/"+requestID, nil)
	req.Header.Set("X-Account-ID", otherID)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign request expected 404, got %d", w.Code)
	}
}
