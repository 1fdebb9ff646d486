package listSessions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventSignup/internal/display"
	"eventSignup/internal/http-server/handlers/session/listSessions/mocks"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListSessionsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockLister := mocks.NewSessionsLister(t)

	var seenDevice string
	mockLister.On("Views", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { seenDevice = args.String(1) }).
		Return([]display.View{
			{Key: "pier", Loaded: true, Capacity: 40, RemainingSlots: 39},
			{Key: "tang", Loaded: false, Capacity: 24},
		}).Once()

	router := chi.NewRouter()
	router.Use(device.New())
	router.Get("/sessions", New(logger, mockLister))

	req, err := http.NewRequest(http.MethodGet, "/sessions", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp SessionsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "OK", resp.Status)
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "pier", resp.Sessions[0].Key)
	assert.Equal(t, 39, resp.Sessions[0].RemainingSlots)
	assert.False(t, resp.Sessions[1].Loaded)

	assert.NotEmpty(t, seenDevice)
	require.Len(t, rr.Result().Cookies(), 1)
	assert.Equal(t, seenDevice, rr.Result().Cookies()[0].Value)
}

func TestHandlerWithoutDevice(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewSessionsLister(t))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sessions", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"device id is required"}`, rr.Body.String())
}
