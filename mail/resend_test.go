package mail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendSend(t *testing.T) {
	var got struct {
		auth        string
		idempotency string
		body        sendRequest
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.auth = r.Header.Get("Authorization")
		got.idempotency = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got.body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	m := NewResend("re_test_key", "admin@example.com")
	m.endpoint = srv.URL

	require.NoError(t, m.Send(t.Context(), "123456"))

	assert.Equal(t, "Bearer re_test_key", got.auth)
	assert.NotEmpty(t, got.idempotency)
	assert.Equal(t, []string{"admin@example.com"}, got.body.To)
	assert.Equal(t, subject, got.body.Subject)
	assert.True(t, strings.Contains(got.body.HTML, "123456"), "code missing from email body")
}

func TestResendSendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	m := NewResend("re_test_key", "not-an-address")
	m.endpoint = srv.URL

	err := m.Send(t.Context(), "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
}

func TestResendSendOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewResend("re_test_key", "admin@example.com")
	m.endpoint = srv.URL

	err := m.Send(t.Context(), "123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
