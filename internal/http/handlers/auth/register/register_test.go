package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/miracle-catalog/internal/lib/password"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, email, name, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, name, password)
	s, _ := args.Get(0).(*auth.Session)
	return s, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	session := &auth.Session{
		AccessToken: "tok",
		TokenType:   auth.TokenType,
		User:        &models.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"},
	}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*ServiceMock)
		wantStatus int
		wantError  string
	}{
		{
			name: "valid registration",
			body: `{"email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "ana@example.com", "Ana", "secret1").Return(session, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json body",
			body:       "not a json",
			setupMock:  func(*ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "invalid email",
			body:       `{"email":"nope","password":"secret1","name":"Ana"}`,
			setupMock:  func(*ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Email must be a valid email",
		},
		{
			name: "short password",
			body: `{"email":"a@x.com","password":"pw1","name":"A"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "a@x.com", "A", "pw1").Return(session, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty password",
			body:       `{"email":"ana@example.com","password":"","name":"Ana"}`,
			setupMock:  func(*ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Password is a required field",
		},
		{
			name:       "password longer than 72 bytes",
			body:       `{"email":"ana@example.com","password":"` + string(bytes.Repeat([]byte("a"), 73)) + `","name":"Ana"}`,
			setupMock:  func(*ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Password must be at most 72 bytes",
		},
		{
			name:       "40 two-byte runes exceed 72 bytes",
			body:       `{"email":"ana@example.com","password":"` + strings.Repeat("é", 40) + `","name":"Ana"}`,
			setupMock:  func(*ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Password must be at most 72 bytes",
		},
		{
			name: "hasher rejects password",
			body: `{"email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("auth.Register: %w", password.ErrTooLong)).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Password must be at most 72 bytes",
		},
		{
			name: "duplicate email",
			body: `{"email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, "ana@example.com", "Ana", "secret1").Return(nil, auth.ErrDuplicateEmail).Once()
			},
			wantStatus: http.StatusConflict,
			wantError:  "email already registered",
		},
		{
			name: "internal error",
			body: `{"email":"ana@example.com","password":"secret1","name":"Ana"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "tok", resp["access_token"])
				assert.Equal(t, "bearer", resp["token_type"])
				assert.NotContains(t, rr.Body.String(), "password")
			} else {
				assert.NotEmpty(t, resp["detail"])
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, resp["detail"])
				}
			}
			svc.AssertExpectations(t)
		})
	}
}
