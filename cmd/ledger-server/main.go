package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"snapstakes/internal/config"
	"snapstakes/internal/ledger"
	"snapstakes/internal/logging"
	"snapstakes/internal/store"
)

func main() {
	app, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(app.Log)
	cfg := app.Server

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	if err := st.EnsureDefaultGames(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("ensure default games failed")
	}
	seedAccount(st, cfg.SeedAccount1, cfg.SignupBonus)
	seedAccount(st, cfg.SeedAccount2, cfg.SignupBonus)

	svc := ledger.NewService(st, cfg.VoteUnitCost)
	r := newRouter(st, svc, cfg)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func newRouter(st *store.Store, svc *ledger.Service, cfg config.ServerConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Use(bodyCaptureMiddleware(4096))

		r.Get("/public/games", publicGamesHandler(svc))
		r.Get("/public/games/{game_id}", publicGameHandler(svc))
		r.Get("/public/photos/{photo_id}", publicPhotoHandler(st))

		r.Group(func(r chi.Router) {
			r.Use(accountAuthMiddleware(st))
			r.Post("/play", playHandler(svc))
			r.Post("/vote", voteHandler(svc))
			r.Post("/withdrawals", requestWithdrawalHandler(svc))
			r.Get("/withdrawals/{request_id}", getWithdrawalHandler(svc))
			r.Get("/me", meHandler(st))
		})

		r.Group(func(r chi.Router) {
			r.Use(adminAuthMiddleware(cfg.AdminAPIKey))
			r.Get("/admin/accounts", accountsHandler(st))
			r.Post("/admin/topup", topupHandler(st))
			r.Post("/admin/games", createGameHandler(svc))
			r.Patch("/admin/games/{game_id}", updateGameHandler(svc))
			r.Post("/admin/photos", createPhotoHandler(st))
			r.Get("/admin/plays", playsHandler(st))
			r.Get("/admin/fees", feesHandler(st))
			r.Get("/admin/withdrawals", listWithdrawalsHandler(st))
			r.Post("/admin/withdrawals/{request_id}/decision", decideWithdrawalHandler(svc))
			r.Get("/admin/reconciliation", reconciliationHandler(svc))
		})
	})

	return r
}

func seedAccount(st *store.Store, id string, initial int64) {
	if id == "" {
		return
	}
	if err := st.EnsureAccount(context.Background(), id, initial, store.RoleStandard); err != nil {
		log.Error().Err(err).Str("account_id", id).Msg("seed account error")
	}
}

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			writeJSON(w, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, map[string]any{"ok": true, "db": "up"})
	}
}
