package refreshSession

import (
	"context"
	"log/slog"
	"net/http"

	"eventSignup/internal/display"
	"eventSignup/internal/http-server/handlers/session/sessionerr"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/api/response"
	"eventSignup/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type RefreshResponse struct {
	response.Response
	Session *display.View `json:"session,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionRefresher
type SessionRefresher interface {
	Refresh(ctx context.Context, key, device string) (display.View, error)
}

// New reloads the roster from the remote. On an unloaded session this is the
// retry path; a failed refresh still answers with the last known view.
func New(log *slog.Logger, refresher SessionRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.refreshSession.New"

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

		view, err := refresher.Refresh(r.Context(), key, deviceID)
		if err != nil {
			log.Error("failed to refresh session", sl.Err(err))

			status, msg := sessionerr.Status(err, "failed to refresh session")
			render.Status(r, status)

			resp := RefreshResponse{Response: response.Error(msg)}
			if view.Key != "" {
				resp.Session = &view
			}
			render.JSON(w, r, resp)
			return
		}

		render.JSON(w, r, RefreshResponse{
			Response: response.OK(),
			Session:  &view,
		})
	}
}
