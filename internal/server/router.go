package server

import (
	"awty-football/gen/proto/awty/v1/awtyv1connect"
	"awty-football/internal/config"
	"awty-football/internal/middleware"
	"awty-football/internal/server/respond"
	"awty-football/internal/service"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const maxJSONBody = 1 << 20

type Handlers struct {
	players  *service.PlayerService
	games    *service.GameService
	ledgers  *service.LedgerService
	auth     *service.AuthService
	transfer *service.TransferService
	cfg      *config.Config
}

func NewHandlers(
	players *service.PlayerService,
	games *service.GameService,
	ledgers *service.LedgerService,
	auth *service.AuthService,
	transfer *service.TransferService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		players:  players,
		games:    games,
		ledgers:  ledgers,
		auth:     auth,
		transfer: transfer,
		cfg:      cfg,
	}
}

// NewRouter wires the REST API and the stats connect service.
func NewRouter(h *Handlers, statsServer *StatsServer, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID(logger))
	r.Use(chimiddleware.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)
	r.Use(middleware.Session(h.auth))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
			r.Post("/google", h.SignIn)
			r.Get("/me", h.Me)
			r.Post("/logout", h.SignOut)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.With(middleware.RequireUser).Post("/", h.CreatePlayer)
			r.With(middleware.RequireUser).Put("/{id}", h.UpdatePlayer)
			r.With(middleware.RequireAdmin).Delete("/{id}", h.DeletePlayer)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.ListGames)
			r.Get("/{id}", h.GetGame)
			r.With(middleware.RequireAdmin).Post("/", h.CreateGame)
			r.With(middleware.RequireAdmin).Put("/{id}", h.UpdateGame)
			r.With(middleware.RequireAdmin).Delete("/{id}", h.DeleteGame)

			r.Route("/{id}/ledger", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.LedgerView)
				r.Post("/{action:assign|swap|leave|return|remove}", h.LedgerCommand)
				r.Get("/goals/candidates", h.AssistCandidates)
				r.Post("/goals", h.RecordGoal)
				r.Put("/goals/{index}", h.EditGoal)
				r.Delete("/goals/{index}", h.DeleteGoal)
				r.Post("/flush", h.FlushLedger)
			})
		})

		r.Get("/export/games.csv", h.ExportGames)
		r.With(middleware.RequireAdmin).Post("/import/games", h.ImportGames)
		r.With(middleware.RequireAdmin).Post("/sync/sheets", h.SyncSheets)
	})

	path, statsHandler := awtyv1connect.NewStatsServiceHandler(statsServer)
	r.Handle(path+"*", statsHandler)

	return r
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID", "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
