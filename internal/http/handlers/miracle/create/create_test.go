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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in models.MiracleInput) (*models.Miracle, error) {
	args := m.Called(ctx, in)
	if res := args.Get(0); res != nil {
		return res.(*models.Miracle), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{
	"name":"Milagre de Lanciano","country":"Itália","country_flag":"🇮🇹","city":"Lanciano",
	"century":"VIII","status":"recognized","historical_context":"h","phenomenon_description":"p",
	"church_verdict":"v","media":[{"type":"image","url":"https://x/y.jpg","title":"t"}]
}`

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(in models.MiracleInput) bool {
					return in.Name == "Milagre de Lanciano" && len(in.Media) == 1
				})).Return(&models.Miracle{ID: "id-1", CreatedAt: time.Now()}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"id-1"`,
		},
		{
			name:           "unknown status",
			body:           `{"name":"x","country":"c","country_flag":"f","city":"c","century":"I","status":"maybe","historical_context":"h","phenomenon_description":"p","church_verdict":"v"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Status must be one of [recognized investigating]`,
		},
		{
			name:           "invalid media type",
			body:           `{"name":"x","country":"c","country_flag":"f","city":"c","century":"I","status":"recognized","historical_context":"h","phenomenon_description":"p","church_verdict":"v","media":[{"type":"gif","url":"u","title":"t"}]}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Media[0].Type must be one of`,
		},
		{
			name:           "missing fields",
			body:           `{}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "broken json",
			body:           `{"name":`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"invalid request body"}`,
		},
		{
			name: "service error",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"could not create miracle"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/miracles", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			New(logger, svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}
