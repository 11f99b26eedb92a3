package adminlogin

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
	Password string `json:"password" validate:"required"`
}

type Response struct {
	Token string `json:"token"`
}

func New(log *slog.Logger, authService *authsrv.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin-login.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("Invalid login data"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			validateErr := err.(validator.ValidationErrors)

			log.Error("invalid request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError("Invalid login data", validateErr))

			return
		}

		token, err := authService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsrv.ErrInvalidCredentials) {
				log.Warn("invalid credentials", slog.String("username", req.Username))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, resp.Error("Invalid username or password"))

				return
			}

			log.Error("failed to login", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, resp.Error("Failed to login"))

			return
		}

		render.JSON(w, r, Response{Token: token})
	}
}
