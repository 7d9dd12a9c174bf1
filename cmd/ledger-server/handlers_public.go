package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"snapstakes/internal/ledger"
	"snapstakes/internal/store"

	"github.com/go-chi/chi/v5"
)

func publicGamesHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListGames(r.Context())
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
	}
}

func publicGameHandler(svc *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "game_id")
		game, err := svc.GetGameConfig(r.Context(), gameID)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(game)
	}
}

func publicPhotoHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID := chi.URLParam(r, "photo_id")
		photo, err := st.GetPhoto(r.Context(), photoID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeHTTPError(w, http.StatusNotFound, "not_found")
				return
			}
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photo_id":   photo.ID,
			"title":      photo.Title,
			"votes":      photo.Votes,
			"created_at": photo.CreatedAt,
		})
	}
}
