// Package contact принимает сообщения обратной связи и публикует событие
// contact.created для фоновой отправки письма.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/miracle-catalog/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

// DefaultListLimit — сколько сообщений отдаёт List без явного лимита.
const DefaultListLimit = 1000

// Repository описывает хранилище сообщений.
type Repository interface {
	CreateContactMessage(ctx context.Context, msg models.ContactMessage) error
	ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error)
}

// Publisher отправляет события в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// NopPublisher используется, когда брокер не настроен.
type NopPublisher struct{}

// Publish ничего не делает.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Service сохраняет и выдаёт сообщения обратной связи.
type Service struct {
	repo      Repository
	publisher Publisher
	metrics   metrics.Recorder
	log       *slog.Logger
	now       func() time.Time
}

// NewService создает новый экземпляр Service. Если publisher равен nil, события не публикуются.
func NewService(repo Repository, publisher Publisher, rec metrics.Recorder, log *slog.Logger) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		metrics:   rec,
		log:       log,
		now:       time.Now,
	}
}

// Create сохраняет сообщение и публикует событие.
// Ошибка публикации не отменяет запись: сообщение уже доступно в списке.
func (s *Service) Create(ctx context.Context, in models.ContactMessageInput) (*models.ContactMessage, error) {
	const op = "contact.Create"

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.RecordContactMessage(msg.Type)

	if err := s.publisher.Publish(ctx, rabbitmq.RoutingKeyContactCreated, msg); err != nil {
		s.log.Error("failed to publish contact event", slog.String("contact_id", msg.ID), sl.Err(err))
	}
	return &msg, nil
}

// List возвращает сообщения, новые первыми.
func (s *Service) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "contact.List"

	list, err := s.repo.ListContactMessages(ctx, DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if list == nil {
		list = []models.ContactMessage{}
	}
	return list, nil
}
