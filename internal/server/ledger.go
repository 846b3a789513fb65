package server

import (
	"awty-football/internal/domain"
	"awty-football/internal/ledger"
	"awty-football/internal/server/respond"
	"awty-football/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type ledgerCommandRequest struct {
	PlayerID string      `json:"playerId"`
	Team     domain.Team `json:"team,omitempty"`
}

type recordGoalRequest struct {
	ScorerID   string `json:"scorerId"`
	AssisterID string `json:"assisterId,omitempty"`
}

type recordGoalResponse struct {
	Index int `json:"index"`
	*service.LedgerView
}

func (h *Handlers) LedgerView(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ParseFilter(r.URL.Query().Get("show"))
	view, err := h.ledgers.View(r.Context(), chi.URLParam(r, "id"), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view)
}

func (h *Handlers) LedgerCommand(w http.ResponseWriter, r *http.Request) {
	var req ledgerCommandRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.ledgers.Apply(r.Context(), chi.URLParam(r, "id"), service.Command{
		Action:   service.Action(chi.URLParam(r, "action")),
		PlayerID: req.PlayerID,
		Team:     req.Team,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view)
}

func (h *Handlers) AssistCandidates(w http.ResponseWriter, r *http.Request) {
	scorerID := r.URL.Query().Get("scorerId")
	if scorerID == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID", "scorerId is required")
		return
	}
	candidates, err := h.ledgers.AssistCandidates(r.Context(), chi.URLParam(r, "id"), scorerID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if candidates == nil {
		candidates = []string{}
	}
	respond.JSON(w, http.StatusOK, map[string][]string{"candidates": candidates})
}

func (h *Handlers) RecordGoal(w http.ResponseWriter, r *http.Request) {
	var req recordGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	index, view, err := h.ledgers.RecordGoal(r.Context(), chi.URLParam(r, "id"), req.ScorerID, req.AssisterID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, recordGoalResponse{Index: index, LedgerView: view})
}

func (h *Handlers) EditGoal(w http.ResponseWriter, r *http.Request) {
	index, ok := goalIndex(w, r)
	if !ok {
		return
	}
	var req ledger.GoalEdit
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.ledgers.EditGoal(r.Context(), chi.URLParam(r, "id"), index, req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view)
}

// DeleteGoal answers 428 with the goal to be removed until the request
// carries confirm=true.
func (h *Handlers) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	index, ok := goalIndex(w, r)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	view, err := h.ledgers.DeleteGoal(r.Context(), chi.URLParam(r, "id"), index, confirmed)
	if err != nil {
		var confirm *service.ConfirmationError
		if errors.As(err, &confirm) {
			respond.ErrorDetail(w, r, err, map[string]any{"index": confirm.Index, "goal": confirm.Goal})
			return
		}
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, view)
}

func (h *Handlers) FlushLedger(w http.ResponseWriter, r *http.Request) {
	status, err := h.ledgers.Flush(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpStatus, code := respond.Classify(err)
		if httpStatus == http.StatusInternalServerError {
			respond.WriteErrorDetail(w, http.StatusServiceUnavailable, "SAVE_FAILED", "game could not be saved", status)
			return
		}
		respond.WriteError(w, httpStatus, code, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, status)
}

func goalIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID", "goal index must be a non-negative integer")
		return 0, false
	}
	return index, true
}
