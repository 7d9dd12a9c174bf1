package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"snapstakes/internal/store"
)

type accountContextKey struct{}

// accountAuthMiddleware resolves the caller from the X-Account-ID header.
// Credit accounts are provisioned out of band, so an unknown ID is a 401
// rather than an implicit signup.
func accountAuthMiddleware(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Account-ID")
			if id == "" {
				writeHTTPError(w, http.StatusUnauthorized, "missing_account")
				return
			}
			account, err := st.GetAccount(r.Context(), id)
			if err != nil {
				writeHTTPError(w, http.StatusUnauthorized, "unknown_account")
				return
			}
			ctx := context.WithValue(r.Context(), accountContextKey{}, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accountFromContext(r *http.Request) *store.Account {
	account, _ := r.Context().Value(accountContextKey{}).(*store.Account)
	return account
}

func adminAuthMiddleware(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey != "" {
				if !checkAdminAuth(r, adminKey) {
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "unauthorized"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func checkAdminAuth(r *http.Request, adminKey string) bool {
	if v := r.Header.Get("X-Admin-Key"); v == adminKey {
		return true
	}
	auth := r.Header.Get("Authorization")
	prefix := "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):] == adminKey
	}
	return false
}

func parsePagination(r *http.Request) (int, int) {
	limit := 50
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
