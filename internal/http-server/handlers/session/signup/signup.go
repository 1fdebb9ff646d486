package signup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"eventSignup/internal/display"
	"eventSignup/internal/form"
	"eventSignup/internal/http-server/handlers/session/sessionerr"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Request = form.Input

type SignupResponse struct {
	response.Response
	Session *display.View `json:"session,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SignupSubmitter
type SignupSubmitter interface {
	Submit(ctx context.Context, key, device string, in form.Input) (display.View, error)
}

func New(log *slog.Logger, submitter SignupSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.signup.New"

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

		log = log.With(slog.String("session", key))

		view, err := submitter.Submit(r.Context(), key, deviceID, req)
		if err != nil {
			log.Info("signup rejected", sl.Err(err))

			status, msg := sessionerr.Status(err, "failed to sign up")
			render.Status(r, status)
			render.JSON(w, r, SignupResponse{
				Response: response.Error(msg),
				Session:  viewOrNil(view),
			})
			return
		}

		log.Info("signup accepted")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SignupResponse{
			Response: response.OK(),
			Session:  &view,
		})
	}
}

func viewOrNil(view display.View) *display.View {
	if view.Key == "" {
		return nil
	}
	return &view
}
