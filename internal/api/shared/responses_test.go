package shared_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/places", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID from the request context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/places", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))
		expectedTraceID := shared.GetTraceID(req.Context())
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusNotFound, "Could not find place for the provided id.")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Message string `json:"message"`
			TraceID string `json:"trace_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Could not find place for the provided id.", resp.Message)
		assert.Equal(t, expectedTraceID, resp.TraceID)
	})

	t.Run("omits trace ID when none is set", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/places", nil)
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusForbidden, "Authentication failed")

		assert.NotContains(t, rec.Body.String(), "trace_id")
	})

	t.Run("status code is not part of the body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/places", nil)
		rec := httptest.NewRecorder()

		shared.RespondWithError(rec, req, http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data.")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	// The wire response must carry the user message only, never the
	// underlying error.
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
	rec := httptest.NewRecorder()

	internal := errors.New("pgx: connection refused to postgres://app:secret@db:5432/places")
	shared.RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "An unexpected error occurred", internal)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
	assert.NotContains(t, rec.Body.String(), "pgx")
	assert.NotContains(t, rec.Body.String(), "secret")
}
