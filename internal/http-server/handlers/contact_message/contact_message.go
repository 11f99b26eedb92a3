package contactmessage

import (
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	"connemaraqueens/internal/models"
	contactsrv "connemaraqueens/internal/services/contact"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

type Request struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type Response struct {
	Success   bool `json:"success"`
	MessageID int  `json:"messageId"`
}

func New(log *slog.Logger, contactService *contactsrv.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact-message.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid contact data"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError("Invalid contact data", validateErr))

			return
		}

		message, err := contactService.Create(r.Context(), models.InsertContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			log.Error("failed to save contact message", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to save contact message"))

			return
		}

		log.Info("contact message saved", slog.Int("messageID", message.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Success:   true,
			MessageID: message.ID,
		})
	}
}
