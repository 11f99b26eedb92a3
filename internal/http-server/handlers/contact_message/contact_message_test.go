package contactmessage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	contactmessage "connemaraqueens/internal/http-server/handlers/contact_message"
	"connemaraqueens/internal/models"
	contactsrv "connemaraqueens/internal/services/contact"
	"connemaraqueens/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, n models.Notification) error { return nil }

func newHandler() http.HandlerFunc {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := contactsrv.New(log, memory.New(), noopNotifier{})
	return contactmessage.New(log, svc)
}

func post(t *testing.T, handler http.HandlerFunc, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	return w
}

func TestContactMessage_Success(t *testing.T) {
	w := post(t, newHandler(), map[string]any{
		"name":    "B",
		"email":   "b@x.com",
		"subject": "Hi",
		"message": "0123456789",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp contactmessage.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.MessageID)
}

func TestContactMessage_MissingFields(t *testing.T) {
	w := post(t, newHandler(), map[string]any{
		"name":  "B",
		"email": "b@x.com",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid contact data", resp.Error)
	assert.Len(t, resp.Details, 2)
}

func TestContactMessage_InvalidEmail(t *testing.T) {
	w := post(t, newHandler(), map[string]any{
		"name":    "B",
		"email":   "not-an-email",
		"subject": "Hi",
		"message": "0123456789",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
