package respond

import (
	"awty-football/internal/domain"
	"awty-football/internal/ledger"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.NewValidationError("name", "is required"), http.StatusBadRequest},
		{ledger.ErrSelfAssist, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrUnauthorized), http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{ledger.ErrGoalIndex, http.StatusNotFound},
		{ledger.ErrInvalidTransition, http.StatusConflict},
		{ledger.ErrConfirmationRequired, http.StatusPreconditionRequired},
		{domain.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		status, _ := Classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)

	Error(rec, req, errors.New("database is on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL", body.Error.Code)
	assert.Equal(t, "internal server error", body.Error.Message)
}
