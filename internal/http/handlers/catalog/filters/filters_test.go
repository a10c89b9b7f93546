package filters

import (
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

func (m *MockService) Filters(ctx context.Context) (*models.Filters, error) {
	args := m.Called(ctx)
	f, _ := args.Get(0).(*models.Filters)
	return f, args.Error(1)
}

func TestFiltersHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("ok", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Filters", mock.Anything).Return(&models.Filters{
			Countries: []string{"Itália", "Portugal"},
			Centuries: []string{"VIII", "XIII"},
		}, nil)

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/filters", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"countries":["Itália","Portugal"],"centuries":["VIII","XIII"]}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Filters", mock.Anything).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		New(logger, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/filters", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
