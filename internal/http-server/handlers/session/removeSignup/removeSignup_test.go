package removeSignup

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventSignup/internal/controller"
	"eventSignup/internal/display"
	"eventSignup/internal/http-server/handlers/session/removeSignup/mocks"
	"eventSignup/internal/http-server/middleware/device"
	"eventSignup/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const deviceID = "a9f1c3e5-7b2d-4c6e-8f0a-1b3d5f7a9c2e"

func TestRemoveSignupHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		body           string
		mockSetup      func(m *mocks.SignupRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"name":" Alex "}`,
			mockSetup: func(m *mocks.SignupRemover) {
				m.On("Remove", mock.Anything, "pier", deviceID, "Alex").
					Return(display.View{Key: "pier", Loaded: true, Capacity: 40, RemainingSlots: 40, Entries: []display.Entry{}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","session":{"key":"pier","title":"","date":"","formatted_date":"","time":"","location":"",
				"loaded":true,"capacity":40,"remaining_slots":40,"entries":[],
				"form":{"name":"","hand":"","training":false,"waiver":false,"hand_required":false,"waiver_required":false,
				"training_option":false,"valid":false,"submit_enabled":false}}}`,
		},
		{
			name: "Not owner",
			body: `{"name":"Kim"}`,
			mockSetup: func(m *mocks.SignupRemover) {
				m.On("Remove", mock.Anything, "pier", deviceID, "Kim").
					Return(display.View{}, controller.ErrNotOwner).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"` + controller.ErrNotOwner.Error() + `"}`,
		},
		{
			name: "Busy",
			body: `{"name":"Alex"}`,
			mockSetup: func(m *mocks.SignupRemover) {
				m.On("Remove", mock.Anything, "pier", deviceID, "Alex").
					Return(display.View{}, controller.ErrBusy).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"` + controller.ErrBusy.Error() + `"}`,
		},
		{
			name:           "Missing name",
			body:           `{}`,
			mockSetup:      func(m *mocks.SignupRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Name is a required field"}`,
		},
		{
			name:           "Empty body",
			body:           "",
			mockSetup:      func(m *mocks.SignupRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"empty request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewSignupRemover(t)
			tc.mockSetup(mockRemover)

			router := chi.NewRouter()
			router.Post("/sessions/{key}/remove", New(logger, mockRemover))

			req, err := http.NewRequest(http.MethodPost, "/sessions/pier/remove", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(device.WithID(req.Context(), deviceID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
