package paymentintent

import (
	"errors"
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	paymentsrv "connemaraqueens/internal/services/payments"
	"connemaraqueens/internal/storage"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

type Request struct {
	Amount    float64 `json:"amount"`
	BookingID int     `json:"bookingId"`
}

type Response struct {
	ClientSecret string `json:"clientSecret"`
}

func New(log *slog.Logger, paymentService *paymentsrv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment-intent.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid amount"))

			return
		}

		clientSecret, err := paymentService.CreatePaymentIntent(r.Context(), req.Amount, req.BookingID)
		if err != nil {
			if errors.Is(err, paymentsrv.ErrInvalidAmount) {
				log.Warn("invalid amount", slog.Float64("amount", req.Amount))

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error("Invalid amount"))

				return
			}

			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking not found", slog.Int("bookingID", req.BookingID))

				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, resp.Error("Booking not found"))

				return
			}

			// gateway detail stays in the log, the client gets a
			// generic message
			log.Error("failed to create payment intent", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to create payment intent"))

			return
		}

		log.Info("payment intent created", slog.Int("bookingID", req.BookingID))

		render.JSON(w, r, Response{ClientSecret: clientSecret})
	}
}
