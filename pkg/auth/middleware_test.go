package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jwtService := NewMockJWTServiceInterface(ctrl)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(strconv.Itoa(userID)))
	})
	handler := AuthMiddleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good").Return(&Claims{UserID: 7}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "7",
		},
		{
			name:         "Missing header",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			req := httptest.NewRequest(http.MethodGet, "/api/trades", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}
