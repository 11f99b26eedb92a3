package adminregister

import (
	"errors"
	"log/slog"
	"net/http"

	resp "connemaraqueens/internal/lib/api/response"
	"connemaraqueens/internal/lib/logger/sl"
	authsrv "connemaraqueens/internal/services/auth"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
)

type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type Response struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

func New(log *slog.Logger, authService *authsrv.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin-register.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid registration data"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError("Invalid registration data", validateErr))

			return
		}

		user, err := authService.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsrv.ErrUserExists) {
				log.Warn("username taken", slog.String("username", req.Username))

				render.Status(r, http.StatusConflict)
				render.JSON(w, r, resp.Error("Username is already taken"))

				return
			}

			log.Error("failed to register user", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to register user"))

			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			ID:       user.ID,
			Username: user.Username,
		})
	}
}
