package server

import (
	"awty-football/internal/constants"
	"awty-football/internal/csvio"
	"awty-football/internal/server/respond"
	"bytes"
	"errors"
	"net/http"
)

func (h *Handlers) ExportGames(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.transfer.ExportCSV(r.Context(), &buf); err != nil {
		respond.Error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="games.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handlers) ImportGames(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, constants.ImportMaxBodyBytes)
	n, err := h.transfer.Import(r.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.WriteError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "import file is too large")
			return
		}
		var rowErr *csvio.RowError
		if errors.As(err, &rowErr) {
			respond.ErrorDetail(w, r, err, map[string]int{"row": rowErr.Row})
			return
		}
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]int{"imported": n})
}

func (h *Handlers) SyncSheets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.transfer.SyncSheets(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}
