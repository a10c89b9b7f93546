package create

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in models.ContactMessageInput) (*models.ContactMessage, error) {
	args := m.Called(ctx, in)
	msg, _ := args.Get(0).(*models.ContactMessage)
	return msg, args.Error(1)
}

func TestContactCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	valid := models.ContactMessageInput{Type: "sugestao", Email: "ana@example.com", Message: "Ideia"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "saved",
			body: `{"type":"sugestao","email":"ana@example.com","message":"Ideia"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, valid).Return(&models.ContactMessage{ID: "c-1", Type: "sugestao"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"c-1"`,
		},
		{
			name:           "unknown type",
			body:           `{"type":"elogio","email":"ana@example.com","message":"x"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Type must be one of [duvida reclamacao sugestao]`,
		},
		{
			name:           "bad email",
			body:           `{"type":"duvida","email":"ana","message":"x"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "db error",
			body: `{"type":"sugestao","email":"ana@example.com","message":"Ideia"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, valid).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not save message`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact-messages", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
