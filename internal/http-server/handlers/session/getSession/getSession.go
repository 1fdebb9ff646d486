package getSession

import (
	"context"
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

type SessionResponse struct {
	response.Response
	Session *display.View `json:"session,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionViewer
type SessionViewer interface {
	View(ctx context.Context, key, device string, in form.Input) (display.View, error)
}

func New(log *slog.Logger, viewer SessionViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.getSession.New"

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

		log = log.With(slog.String("session", key))

		view, err := viewer.View(r.Context(), key, deviceID, form.Input{})
		if err != nil {
			log.Error("failed to render session", sl.Err(err))

			status, msg := sessionerr.Status(err, "failed to get session")
			render.Status(r, status)
			render.JSON(w, r, response.Error(msg))
			return
		}

		responseOK(w, r, &view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view *display.View) {
	render.JSON(w, r, SessionResponse{
		Response: response.OK(),
		Session:  view,
	})
}
