package getbooking

import (
	"errors"
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	bookingsrv "connemaraqueens/internal/services/booking"
	"connemaraqueens/internal/storage"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

func New(log *slog.Logger, bookingService *bookingsrv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.get-booking.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		reference := chi.URLParam(r, "reference")
		if reference == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Missing booking reference"))

			return
		}

		booking, err := bookingService.GetByReference(r.Context(), reference)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				log.Warn("booking not found", slog.String("reference", reference))

				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, resp.Error("Booking not found"))

				return
			}

			log.Error("failed to get booking", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to get booking"))

			return
		}

		render.JSON(w, r, booking)
	}
}
