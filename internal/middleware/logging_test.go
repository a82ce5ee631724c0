package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRequest_AssignsRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, httptest.NewRequest("GET", "/sensor_event", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get("X-Request-Id"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestLogRequest_KeepsValidIncomingID(t *testing.T) {
	incoming := uuid.NewString()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	req := httptest.NewRequest("GET", "/sensor_event", nil)
	req.Header.Set("X-Request-Id", incoming)
	rr := httptest.NewRecorder()
	LogRequest()(next).ServeHTTP(rr, req)
	assert.Equal(t, incoming, seen)

	req = httptest.NewRequest("GET", "/sensor_event", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	LogRequest()(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not-a-uuid", seen)
}
