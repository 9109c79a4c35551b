package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stayloft/stayloft/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func TestHealth_Healthy(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{}, "0.1.0-test")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "0.1.0-test", data["version"])

	db := data["database"].(map[string]any)
	assert.Equal(t, true, db["connected"])
}

func TestHealth_DegradedWhenDatabaseUnreachable(t *testing.T) {
	t.Parallel()

	h := handler.NewHealthHandler(&mockPinger{err: errors.New("connection refused")}, "0.1.0-test")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]any)
	assert.Equal(t, "degraded", data["status"])

	db := data["database"].(map[string]any)
	assert.Equal(t, false, db["connected"])
}
