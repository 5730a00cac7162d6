package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("handled")
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/api/v1/profiles/alice/insights", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	out := buf.String()
	// The handler's own log line carries the request fields.
	assert.Contains(t, out, `"path":"/api/v1/profiles/alice/insights"`)
	assert.Contains(t, out, "handled")
	// The middleware logs completion with the response status.
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, "request completed")
}
