package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"connemaraqueens/internal/models"
	stripecli "connemaraqueens/internal/stripe"
)

// Deposits are charged in EUR; the amount arrives in major units and Stripe
// wants cents.
const currency = "eur"

var ErrInvalidAmount = errors.New("amount must be greater than zero")

type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (stripecli.Intent, error)
}

type Storage interface {
	UpdateBookingPayment(ctx context.Context, id int, stripePaymentID string) (models.Booking, error)
}

type Service struct {
	log     *slog.Logger
	gateway Gateway
	storage Storage
}

func New(log *slog.Logger, gateway Gateway, storage Storage) *Service {
	return &Service{
		log:     log,
		gateway: gateway,
		storage: storage,
	}
}

// CreatePaymentIntent creates a deposit payment intent and, when a booking
// id is given, links the intent to the booking. Returns the client secret
// the browser needs to confirm the payment.
func (s *Service) CreatePaymentIntent(ctx context.Context, amount float64, bookingID int) (string, error) {
	const op = "services.payments.CreatePaymentIntent"

	log := s.log.With(slog.String("op", op))

	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	amountMinor := int64(math.Round(amount * 100))

	metadata := map[string]string{}
	if bookingID > 0 {
		metadata["bookingId"] = strconv.Itoa(bookingID)
	}

	intent, err := s.gateway.CreateIntent(ctx, amountMinor, currency, metadata)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount_minor", amountMinor),
	)

	// no booking id means there is nothing to link; the intent still goes
	// back to the caller
	if bookingID > 0 {
		if _, err := s.storage.UpdateBookingPayment(ctx, bookingID, intent.ID); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	return intent.ClientSecret, nil
}
