package server

import (
	"awty-football/internal/domain"
	"awty-football/internal/server/respond"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type createPlayerRequest struct {
	Name       string `json:"name"`
	PictureURL string `json:"pictureUrl"`
}

func (h *Handlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if players == nil {
		players = []domain.Player{}
	}
	respond.JSON(w, http.StatusOK, players)
}

func (h *Handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	player, err := h.players.Create(r.Context(), req.Name, req.PictureURL)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, player)
}

func (h *Handlers) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req domain.PlayerUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	player, err := h.players.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, player)
}

func (h *Handlers) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.players.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	respond.JSON(w, http.StatusOK, games)
}

func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, game)
}

func (h *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.games.Create(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, game)
}

func (h *Handlers) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var req domain.GameUpdate
	if !decodeJSON(w, r, &req) {
		return
	}
	game, err := h.games.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, game)
}

func (h *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
