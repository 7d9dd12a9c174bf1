package main

import (
	"encoding/json"
	"net/http"

	"snapstakes/internal/ledger"
	"snapstakes/internal/store"

	"github.com/go-chi/chi/v5"
)

func playHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GameID string `json:"game_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account := accountFromContext(r)
		res, err := svc.Play(r.Context(), account.ID, req.GameID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"play_id":       res.Record.ID,
			"game_id":       res.Record.GameID,
			"cost":          res.Record.Cost,
			"fee":           res.Record.Fee,
			"stake":         res.Record.Stake,
			"outcome_index": res.Record.OutcomeIndex,
			"multiplier":    res.Record.Multiplier,
			"award":         res.Record.Award,
			"balance":       res.Balance,
		})
	}
}

func voteHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PhotoID string `json:"photo_id"`
			Count   int64  `json:"count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PhotoID == "" {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account := accountFromContext(r)
		res, err := svc.Vote(r.Context(), account.ID, req.PhotoID, req.Count)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photo_id": req.PhotoID,
			"votes":    res.Votes,
			"balance":  res.Balance,
		})
	}
}

func requestWithdrawalHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Amount      int64  `json:"amount"`
			Destination string `json:"destination"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		account := accountFromContext(r)
		wr, err := svc.RequestWithdrawal(r.Context(), account.ID, req.Amount, req.Destination)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(wr)
	}
}

func getWithdrawalHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := chi.URLParam(r, "request_id")
		account := accountFromContext(r)
		wr, err := svc.GetWithdrawal(r.Context(), requestID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		// players only see their own requests
		if wr.AccountID != account.ID && account.Role != store.RoleAdmin {
			writeHTTPError(w, http.StatusNotFound, "not_found")
			return
		}
		_ = json.NewEncoder(w).Encode(wr)
	}
}

func meHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := accountFromContext(r)
		balance, err := st.GetAccountBalance(r.Context(), account.ID)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		limit, offset := parsePagination(r)
		plays, err := st.ListPlayRecords(r.Context(), store.PlayFilter{AccountID: account.ID}, limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		withdrawals, err := st.ListWithdrawRequests(r.Context(), account.ID, "", limit, offset)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		playsOut := make([]map[string]any, 0, len(plays))
		for _, p := range plays {
			playsOut = append(playsOut, map[string]any{
				"play_id":       p.ID,
				"game_id":       p.GameID,
				"cost":          p.Cost,
				"award":         p.Award,
				"outcome_index": p.OutcomeIndex,
				"created_at":    p.CreatedAt,
			})
		}
		withdrawalsOut := make([]map[string]any, 0, len(withdrawals))
		for _, wr := range withdrawals {
			withdrawalsOut = append(withdrawalsOut, map[string]any{
				"id":         wr.ID,
				"amount":     wr.Amount,
				"status":     wr.Status,
				"created_at": wr.CreatedAt,
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"account_id":  account.ID,
			"balance":     balance,
			"plays":       playsOut,
			"withdrawals": withdrawalsOut,
		})
	}
}
