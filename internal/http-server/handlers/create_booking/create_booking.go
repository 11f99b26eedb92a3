package createbooking

import (
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/models"
	bookingsrv "connemaraqueens/internal/services/booking"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

type Request struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	NucsCount      int    `json:"nucsCount" validate:"gte=0"`
	QueensCount    int    `json:"queensCount" validate:"gte=0"`
	PreferredMonth string `json:"preferredMonth" validate:"required"`
	Notes          string `json:"notes"`
}

func New(log *slog.Logger, bookingService *bookingsrv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.create-booking.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid booking data"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError("Invalid booking data", validateErr))

			return
		}

		booking, err := bookingService.Create(r.Context(), models.InsertBooking{
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			NucsCount:      req.NucsCount,
			QueensCount:    req.QueensCount,
			PreferredMonth: req.PreferredMonth,
			Notes:          req.Notes,
		})
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to create booking"))

			return
		}

		log.Info("booking created", slog.String("reference", booking.Reference))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, booking)
	}
}
