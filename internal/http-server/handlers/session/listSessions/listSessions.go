package listSessions

import (
	"context"
	"log/slog"
	"net/http"

	"eventSignup/internal/display"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/api/response"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type SessionsResponse struct {
	response.Response
	Sessions []display.View `json:"sessions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionsLister
type SessionsLister interface {
	Views(ctx context.Context, device string) []display.View
}

func New(log *slog.Logger, lister SessionsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.listSessions.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		deviceID := device.FromContext(r.Context())
		if deviceID == "" {
			log.Error("device id is missing")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("device id is required"))
			return
		}

		views := lister.Views(r.Context(), deviceID)

		log.Debug("sessions rendered", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, views []display.View) {
	render.JSON(w, r, SessionsResponse{
		Response: response.OK(),
		Sessions: views,
	})
}
