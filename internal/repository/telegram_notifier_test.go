package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ChainPulse/internal/domain/models"
	xhttp "ChainPulse/pkg/http"
)

func TestTelegramNotifier_Deliver(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7}}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(xhttp.NewClient(xhttp.WithTimeout(time.Second)), srv.URL, "123:abc", "Markdown")

	err := n.Deliver(context.Background(), "42", "📅 Date: 2024-11-02")

	require.NoError(t, err)
	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "42", gotBody["chat_id"])
	assert.Equal(t, "📅 Date: 2024-11-02", gotBody["text"])
	assert.Equal(t, "Markdown", gotBody["parse_mode"])
}

func TestTelegramNotifier_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(xhttp.NewClient(), srv.URL, "123:abc", "")

	err := n.Deliver(context.Background(), "42", "hello")

	var derr *models.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "telegram", derr.Channel)
	assert.Equal(t, "42", derr.Destination)
	var apiErr *TelegramAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
}

func TestTelegramNotifier_HTTPStatusFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(xhttp.NewClient(), srv.URL, "123:abc", "")

	err := n.Deliver(context.Background(), "42", "hello")

	var derr *models.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, calls, "delivery is never retried")
}

func TestTelegramNotifier_RedactsToken(t *testing.T) {
	n := NewTelegramNotifier(xhttp.NewClient(xhttp.WithTimeout(time.Second)), "http://127.0.0.1:1", "secret-token", "")

	err := n.Deliver(context.Background(), "42", "hello")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestTelegramNotifier_RedactedTimeoutKeepsCause(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	n := NewTelegramNotifier(xhttp.NewClient(), srv.URL, "secret-token", "")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := n.Deliver(ctx, "42", "hello")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
	assert.Contains(t, err.Error(), "<redacted>")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTelegramNotifier_RequiresCredentials(t *testing.T) {
	n := NewTelegramNotifier(xhttp.NewClient(), "", "", "")

	err := n.Deliver(context.Background(), "42", "hello")

	var derr *models.DeliveryError
	assert.ErrorAs(t, err, &derr)
}
