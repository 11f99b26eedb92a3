package paymentintent_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	paymentintent "connemaraqueens/internal/http-server/handlers/payment_intent"
	"connemaraqueens/internal/models"
	paymentsrv "connemaraqueens/internal/services/payments"
	"connemaraqueens/internal/storage/memory"
	stripecli "connemaraqueens/internal/stripe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	calls int
	err   error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (stripecli.Intent, error) {
	f.calls++
	if f.err != nil {
		return stripecli.Intent{}, f.err
	}
	return stripecli.Intent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}, nil
}

func setup(t *testing.T, gateway *fakeGateway) (http.HandlerFunc, *memory.MemStorage) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New()
	svc := paymentsrv.New(log, gateway, store)

	return paymentintent.New(log, svc), store
}

func post(t *testing.T, handler http.HandlerFunc, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	return w
}

func TestPaymentIntent_Success(t *testing.T) {
	gateway := &fakeGateway{}
	handler, store := setup(t, gateway)

	booking, err := store.CreateBooking(context.Background(), models.InsertBooking{
		FullName:       "A",
		Email:          "a@x.com",
		Phone:          "1",
		NucsCount:      2,
		QueensCount:    1,
		PreferredMonth: "June",
		DepositAmount:  "120",
	}, "BEE-AAAAAAAA")
	require.NoError(t, err)

	w := post(t, handler, map[string]any{"amount": 120, "bookingId": booking.ID})

	require.Equal(t, http.StatusOK, w.Code)

	var resp paymentintent.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_test_123_secret", resp.ClientSecret)

	updated, err := store.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, updated.StripePaymentID)
}

func TestPaymentIntent_ZeroAmount(t *testing.T) {
	gateway := &fakeGateway{}
	handler, _ := setup(t, gateway)

	w := post(t, handler, map[string]any{"amount": 0})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Zero(t, gateway.calls)
}

func TestPaymentIntent_MissingAmount(t *testing.T) {
	gateway := &fakeGateway{}
	handler, _ := setup(t, gateway)

	w := post(t, handler, map[string]any{"bookingId": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gateway.calls)
}

func TestPaymentIntent_UnknownBooking(t *testing.T) {
	handler, _ := setup(t, &fakeGateway{})

	w := post(t, handler, map[string]any{"amount": 120, "bookingId": 42})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentIntent_GatewayFailure(t *testing.T) {
	handler, _ := setup(t, &fakeGateway{err: context.DeadlineExceeded})

	w := post(t, handler, map[string]any{"amount": 120})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to create payment intent", resp.Error)
}
