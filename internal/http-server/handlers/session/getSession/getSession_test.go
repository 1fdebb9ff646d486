package getSession

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventSignup/internal/controller"
	"eventSignup/internal/display"
	"eventSignup/internal/form"
	"eventSignup/internal/http-server/handlers/session/getSession/mocks"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const deviceID = "0b7c8e7e-4a55-4f5f-8d7c-0c6b3e9a1f20"

func TestGetSessionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		key            string
		mockSetup      func(m *mocks.SessionViewer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			key:  "pier",
			mockSetup: func(m *mocks.SessionViewer) {
				m.On("View", mock.Anything, "pier", deviceID, form.Input{}).
					Return(display.View{
						Key:            "pier",
						Loaded:         true,
						Capacity:       40,
						RemainingSlots: 38,
						Entries: []display.Entry{
							{Name: "Alex", Label: "Alex (right)", Removable: true},
							{Name: "Kim", Label: "Kim (left)"},
						},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp SessionResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Session)
				assert.Equal(t, 38, resp.Session.RemainingSlots)
				require.Len(t, resp.Session.Entries, 2)
				assert.True(t, resp.Session.Entries[0].Removable)
				assert.False(t, resp.Session.Entries[1].Removable)
			},
		},
		{
			name: "Unknown session",
			key:  "nope",
			mockSetup: func(m *mocks.SessionViewer) {
				m.On("View", mock.Anything, "nope", deviceID, form.Input{}).
					Return(display.View{}, controller.ErrUnknownSession).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"session not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockViewer := mocks.NewSessionViewer(t)
			tc.mockSetup(mockViewer)

			router := chi.NewRouter()
			router.Get("/sessions/{key}", New(logger, mockViewer))

			req, err := http.NewRequest(http.MethodGet, "/sessions/"+tc.key, nil)
			require.NoError(t, err)
			req = req.WithContext(device.WithID(req.Context(), deviceID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewSessionViewer(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(device.WithID(context.Background(), deviceID))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "session key is required")
}

func TestHandlerWithoutDevice(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewSessionViewer(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("key", "pier")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "device id is required")
}

func TestHandlerLogsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	mockViewer := mocks.NewSessionViewer(t)
	mockViewer.On("View", mock.Anything, "pier", deviceID, form.Input{}).
		Return(display.View{}, controller.ErrNotLoaded).Once()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Get("/sessions/{key}", New(logger, mockViewer))

	req := httptest.NewRequest(http.MethodGet, "/sessions/pier", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	req = req.WithContext(device.WithID(req.Context(), deviceID))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.Split(buf.Bytes(), []byte("\n"))[0], &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "handlers.session.getSession.New", entry["op"])
}
