package apiclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiozen/yogabook/internal/model"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClient_SendsAuthAndTracingHeaders(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = []model.Session{}

	client := New(rs.ts.URL+"/api", 5*time.Second, staticToken("tok-123"), zerolog.Nop())
	_, err := client.Sessions().All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", rs.header.Get("Authorization"))
	assert.NotEmpty(t, rs.header.Get("X-Request-ID"))
}

func TestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	rs := newRecordingServer(t)
	rs.response = []model.Session{}

	_, err := rs.client().Sessions().All(context.Background())
	require.NoError(t, err)

	assert.Empty(t, rs.header.Get("Authorization"))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rs := newRecordingServer(t)
			rs.status = tt.status
			rs.response = model.MessageResponse{Message: "nope"}

			_, err := rs.client().Sessions().Detail(context.Background(), 42)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "want %v for status %d", tt.sentinel, tt.status)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Message)
			assert.NotEmpty(t, apiErr.RequestID)
		})
	}
}

func TestClient_TransportErrorPropagates(t *testing.T) {
	// Nothing listens on this port.
	client := New("http://127.0.0.1:1/api", 500*time.Millisecond, nil, zerolog.Nop())

	_, err := client.Sessions().All(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not APIErrors")
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, Message: "Session not found"}
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "Session not found")
}
