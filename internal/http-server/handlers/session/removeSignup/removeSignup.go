package removeSignup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventSignup/internal/display"
	"eventSignup/internal/http-server/handlers/session/sessionerr"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name string `json:"name" validate:"required"`
}

type RemoveResponse struct {
	response.Response
	Session *display.View `json:"session,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SignupRemover
type SignupRemover interface {
	Remove(ctx context.Context, key, device, name string) (display.View, error)
}

func New(log *slog.Logger, remover SignupRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.removeSignup.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		key := chi.URLParam(r, "key")
		if key == "" {
			log.Error("session key is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("session key is required"))
			return
		}

		deviceID := device.FromContext(r.Context())
		if deviceID == "" {
			log.Error("device id is missing")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("device id is required"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.String("session", key))

		view, err := remover.Remove(r.Context(), key, deviceID, strings.TrimSpace(req.Name))
		if err != nil {
			log.Info("remove rejected", sl.Err(err))

			status, msg := sessionerr.Status(err, "failed to remove signup")
			render.Status(r, status)

			resp := RemoveResponse{Response: response.Error(msg)}
			if view.Key != "" {
				resp.Session = &view
			}
			render.JSON(w, r, resp)
			return
		}

		log.Info("signup removed")

		render.JSON(w, r, RemoveResponse{
			Response: response.OK(),
			Session:  &view,
		})
	}
}
