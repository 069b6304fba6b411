package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apiMiddleware "github.com/placeshare/places-api/internal/api/middleware"
	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var firstID, secondID string

	handler := apiMiddleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if firstID == "" {
			firstID = shared.GetTraceID(r.Context())
		} else {
			secondID = shared.GetTraceID(r.Context())
		}
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/places", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.NotEmpty(t, firstID)
	assert.NotEmpty(t, secondID)
	assert.NotEqual(t, firstID, secondID, "each request gets its own trace ID")
}
