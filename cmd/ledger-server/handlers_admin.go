package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"snapstakes/internal/ledger"
	"snapstakes/internal/store"

	"github.com/go-chi/chi/v5"
)

func accountsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		items, err := st.ListAccounts(r.Context(), limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			out = append(out, map[string]any{
				"account_id": it.ID,
				"balance":    it.Balance,
				"role":       it.Role,
				"created_at": it.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func topupHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AccountID string `json:"account_id"`
			Amount    int64  `json:"amount"`
			Reason    string `json:"reason"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AccountID == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Amount <= 0 {
			writeHTTPError(w, http.StatusBadRequest, "invalid_amount")
			return
		}
		if req.Reason == "" {
			req.Reason = "admin_topup"
		}
		balance, err := st.Credit(r.Context(), req.AccountID, req.Amount, req.Reason)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeHTTPError(w, http.StatusNotFound, "not_found")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"account_id": req.AccountID,
			"balance":    balance,
		})
	}
}

type gameConfigBody struct {
	GameID      string    `json:"game_id"`
	Enabled     *bool     `json:"enabled"`
	Cost        int64     `json:"cost"`
	FeePercent  int64     `json:"fee_percent"`
	Odds        []float64 `json:"odds"`
	Multipliers []float64 `json:"payout_multipliers"`
}

func createGameHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gameConfigBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		enabled := true
		if req.Enabled != nil {
			enabled = *req.Enabled
		}
		game, err := svc.CreateGameConfig(r.Context(), store.GameConfig{
			ID:          req.GameID,
			Enabled:     enabled,
			Cost:        req.Cost,
			FeePercent:  req.FeePercent,
			Odds:        req.Odds,
			Multipliers: req.Multipliers,
		})
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeAdminGame(w, game)
	}
}

func updateGameHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		var patch ledger.GamePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		game, err := svc.UpdateGameConfig(r.Context(), gameID, patch)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeAdminGame(w, game)
	}
}

// writeAdminGame returns the full config including fields the public
// projection hides.
func writeAdminGame(w http.ResponseWriter, g *store.GameConfig) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"game_id":            g.ID,
		"enabled":            g.Enabled,
		"cost":               g.Cost,
		"fee_percent":        g.FeePercent,
		"odds":               g.Odds,
		"payout_multipliers": g.Multipliers,
		"updated_at":         g.UpdatedAt,
	})
}

func createPhotoHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title string `json:"title"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		photo := store.Photo{ID: store.NewID(), Title: req.Title}
		if err := st.InsertPhoto(r.Context(), photo); err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photo_id": photo.ID,
			"title":    photo.Title,
		})
	}
}

func playsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		filter := store.PlayFilter{
			AccountID: r.URL.Query().Get("account_id"),
			GameID:    r.URL.Query().Get("game_id"),
		}
		items, err := st.ListPlayRecords(r.Context(), filter, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			out = append(out, map[string]any{
				"play_id":       it.ID,
				"account_id":    it.AccountID,
				"game_id":       it.GameID,
				"cost":          it.Cost,
				"fee":           it.Fee,
				"stake":         it.Stake,
				"outcome_index": it.OutcomeIndex,
				"multiplier":    it.Multiplier,
				"award":         it.Award,
				"created_at":    it.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func feesHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		gameID := r.URL.Query().Get("game_id")
		items, err := st.ListFeeRecords(r.Context(), gameID, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			out = append(out, map[string]any{
				"id":         it.ID,
				"game_id":    it.GameID,
				"amount":     it.Amount,
				"created_at": it.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func listWithdrawalsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := parsePagination(r)
		accountID := r.URL.Query().Get("account_id")
		status := r.URL.Query().Get("status")
		items, err := st.ListWithdrawRequests(r.Context(), accountID, status, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		out := make([]map[string]any, 0, len(items))
		for _, it := range items {
			out = append(out, map[string]any{
				"id":           it.ID,
				"account_id":   it.AccountID,
				"amount":       it.Amount,
				"destination":  it.Destination,
				"tx_ref":       it.TxRef,
				"status":       it.Status,
				"created_at":   it.CreatedAt,
				"processed_at": it.ProcessedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items":  out,
			"limit":  limit,
			"offset": offset,
		})
	}
}

func decideWithdrawalHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := chi.URLParam(r, "request_id")
		var req struct {
			Decision string `json:"decision"`
			TxRef    string `json:"tx_ref"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		wr, err := svc.DecideWithdrawal(r.Context(), requestID, req.Decision, req.TxRef)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(wr)
	}
}

func reconciliationHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game_id")
		rec, err := svc.Reconcile(r.Context(), gameID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}
