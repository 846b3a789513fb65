// Package respond writes JSON bodies and maps domain errors to HTTP.
package respond

import (
	"awty-football/internal/domain"
	"awty-football/internal/ledger"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, nil)
}

func WriteErrorDetail(w http.ResponseWriter, status int, code, message string, detail any) {
	w.Header().Set("Cache-Control", "no-store")
	JSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Detail: detail}})
}

// Classify maps an error to its HTTP status and error code.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, ledger.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, "CONFIRMATION_REQUIRED"
	case domain.IsValidation(err):
		return http.StatusBadRequest, "INVALID"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	}
	return http.StatusInternalServerError, "INTERNAL"
}

// Error writes err with the status Classify picks. Internal errors are
// logged and hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	ErrorDetail(w, r, err, nil)
}

func ErrorDetail(w http.ResponseWriter, r *http.Request, err error, detail any) {
	status, code := Classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		message = "internal server error"
	}
	WriteErrorDetail(w, status, code, message, detail)
}
