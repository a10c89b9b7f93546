package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*auth.Session)
	return s, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	session := &auth.Session{
		AccessToken: "tok",
		TokenType:   auth.TokenType,
		User:        &models.User{ID: "u-1", Email: "ana@example.com"},
	}

	tests := []struct {
		name       string
		body       string
		mockSess   *auth.Session
		mockErr    error
		callSvc    bool
		wantStatus int
		wantError  string
	}{
		{name: "success", body: `{"email":"ana@example.com","password":"pw"}`, mockSess: session, callSvc: true, wantStatus: http.StatusOK},
		{name: "wrong password", body: `{"email":"ana@example.com","password":"pw"}`, mockErr: auth.ErrInvalidCredentials, callSvc: true, wantStatus: http.StatusUnauthorized, wantError: "invalid credentials"},
		{name: "store failure", body: `{"email":"ana@example.com","password":"pw"}`, mockErr: errors.New("hash corrupted"), callSvc: true, wantStatus: http.StatusInternalServerError, wantError: "failed to login"},
		{name: "missing password", body: `{"email":"ana@example.com"}`, wantStatus: http.StatusUnprocessableEntity, wantError: "field Password is a required field"},
		{name: "broken json", body: `{`, wantStatus: http.StatusBadRequest, wantError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callSvc {
				svc.On("Login", mock.Anything, "ana@example.com", "pw").Return(tt.mockSess, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["detail"])
			} else {
				assert.NotEmpty(t, resp["access_token"])
			}
			svc.AssertExpectations(t)
		})
	}
}
