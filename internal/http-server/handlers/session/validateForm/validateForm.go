package validateForm

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

type FormResponse struct {
	response.Response
	Form *display.Form `json:"form,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionViewer
type SessionViewer interface {
	View(ctx context.Context, key, device string, in form.Input) (display.View, error)
}

// New re-evaluates the form state for the posted input without submitting it.
func New(log *slog.Logger, viewer SessionViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.validateForm.New"

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

		var in form.Input

		err := render.DecodeJSON(r.Body, &in)
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

		view, err := viewer.View(r.Context(), key, deviceID, in)
		if err != nil {
			log.Error("failed to evaluate form", sl.Err(err), slog.String("session", key))

			status, msg := sessionerr.Status(err, "failed to validate form")
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		render.JSON(w, r, FormResponse{
			Response: response.OK(),
			Form:     &view.Form,
		})
	}
}
