package adminbookings

import (
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/models"
	bookingsrv "connemaraqueens/internal/services/booking"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
)

func New(log *slog.Logger, bookingService *bookingsrv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin-bookings.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, ok := r.Context().Value(models.ContextKey("uid")).(float64)
		if !ok || userID <= 0 {
			log.Error("unauthorized: no userID in context")

			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, resp.Error("Unauthorized"))

			return
		}

		bookings, err := bookingService.List(r.Context())
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to fetch bookings"))

			return
		}

		log.Info("bookings fetched",
			slog.Int("count", len(bookings)),
			slog.Int("userID", int(userID)),
		)

		render.JSON(w, r, bookings)
	}
}
