// Package miracle содержит бизнес-логику каталога: CRUD, массовый импорт,
// фильтры и статистику. Отдельные документы и агрегаты кешируются в Redis,
// любая запись сбрасывает затронутые ключи.
package miracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/miracle-catalog/internal/cache"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/storage"
)

// Ключи кеша для агрегатов каталога.
const (
	statsKey   = "catalog:stats"
	filtersKey = "catalog:filters"
)

// ErrNotFound — чудо с таким идентификатором отсутствует.
var ErrNotFound = errors.New("miracle not found")

// ErrNoneInCentury — в указанном веке нет ни одного чуда.
var ErrNoneInCentury = errors.New("no miracles found for this century")

// Repository описывает контракт хранилища каталога.
type Repository interface {
	CreateMiracle(ctx context.Context, m models.Miracle) error
	GetMiracle(ctx context.Context, id string) (*models.Miracle, error)
	UpdateMiracle(ctx context.Context, m models.Miracle) error
	DeleteMiracle(ctx context.Context, id string) error
	DeleteMiraclesByCentury(ctx context.Context, century string) ([]string, error)
	ListMiracles(ctx context.Context, f models.MiracleFilter) ([]models.Miracle, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListCenturies(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// Service реализует операции над каталогом.
type Service struct {
	repo     Repository
	cache    cache.Cacher
	log      *slog.Logger
	validate *validator.Validate
	metrics  metrics.Recorder
	cacheTTL time.Duration
	now      func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMetrics включает учёт попаданий в кеш и импорта.
func WithMetrics(m metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, c cache.Cacher, cacheTTL time.Duration, log *slog.Logger, opts ...Option) *Service {
	if c == nil {
		c = cache.Nop{}
	}
	s := &Service{
		repo:     repo,
		cache:    c,
		log:      log,
		validate: validator.New(),
		metrics:  metrics.Nop{},
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func miracleKey(id string) string {
	return "miracle:" + id
}

// Create сохраняет новое чудо. Вход должен быть уже провалидирован.
func (s *Service) Create(ctx context.Context, in models.MiracleInput) (*models.Miracle, error) {
	const op = "miracle.Create"

	m := models.NewMiracle(uuid.NewString(), in, s.now().UTC())
	if err := s.repo.CreateMiracle(ctx, m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new miracle", slog.String("id", m.ID))

	s.invalidate(ctx, statsKey, filtersKey)
	return &m, nil
}

// Get возвращает чудо, сначала проверяя кеш.
func (s *Service) Get(ctx context.Context, id string) (*models.Miracle, error) {
	const op = "miracle.Get"

	key := miracleKey(id)
	var cached models.Miracle
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	s.metrics.RecordCacheLookup(found)
	if found {
		return &cached, nil
	}

	m, err := s.repo.GetMiracle(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrMiracleNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, key, m, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return m, nil
}

// List возвращает чудеса по фильтру. Лимит по умолчанию и верхняя граница — MaxListLimit.
func (s *Service) List(ctx context.Context, f models.MiracleFilter) ([]models.Miracle, error) {
	const op = "miracle.List"

	if f.Limit <= 0 || f.Limit > models.MaxListLimit {
		f.Limit = models.MaxListLimit
	}
	list, err := s.repo.ListMiracles(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if list == nil {
		list = []models.Miracle{}
	}
	return list, nil
}

// Update применяет частичное обновление и возвращает итоговый документ.
func (s *Service) Update(ctx context.Context, id string, patch models.MiraclePatch) (*models.Miracle, error) {
	const op = "miracle.Update"

	m, err := s.repo.GetMiracle(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrMiracleNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.Apply(patch, s.now().UTC())
	if err := s.repo.UpdateMiracle(ctx, *m); err != nil {
		if errors.Is(err, storage.ErrMiracleNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated miracle", slog.String("id", id))

	s.invalidate(ctx, miracleKey(id), statsKey, filtersKey)
	return m, nil
}

// Delete удаляет чудо.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "miracle.Delete"

	if err := s.repo.DeleteMiracle(ctx, id); err != nil {
		if errors.Is(err, storage.ErrMiracleNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted miracle", slog.String("id", id))

	s.invalidate(ctx, miracleKey(id), statsKey, filtersKey)
	return nil
}

// DeleteByCentury удаляет все чудеса века и возвращает их количество.
func (s *Service) DeleteByCentury(ctx context.Context, century string) (int, error) {
	const op = "miracle.DeleteByCentury"

	ids, err := s.repo.DeleteMiraclesByCentury(ctx, century)
	if err != nil {
		if errors.Is(err, storage.ErrNoMiracles) {
			return 0, ErrNoneInCentury
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted miracles by century", slog.String("century", century), slog.Int("count", len(ids)))

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, miracleKey(id))
	}
	s.invalidate(ctx, append(keys, statsKey, filtersKey)...)
	return len(ids), nil
}

// BulkImport вставляет элементы по одному. Ошибка элемента не прерывает импорт
// и попадает в результат вместе с его позицией в запросе.
func (s *Service) BulkImport(ctx context.Context, items []models.MiracleInput) models.BulkImportResult {
	res := models.BulkImportResult{
		Imported: []models.ImportedMiracle{},
		Errors:   []models.ImportError{},
	}
	now := s.now().UTC()

	for i, in := range items {
		if err := s.validate.Struct(in); err != nil {
			res.Errors = append(res.Errors, models.ImportError{Index: i, Name: in.Name, Error: err.Error()})
			continue
		}
		m := models.NewMiracle(uuid.NewString(), in, now)
		if err := s.repo.CreateMiracle(ctx, m); err != nil {
			s.log.Warn("failed to import miracle", slog.Int("index", i), sl.Err(err))
			res.Errors = append(res.Errors, models.ImportError{Index: i, Name: in.Name, Error: err.Error()})
			continue
		}
		res.Imported = append(res.Imported, models.ImportedMiracle{Name: in.Name, ID: m.ID})
	}
	res.ImportedCount = len(res.Imported)
	res.ErrorCount = len(res.Errors)

	s.log.Info("bulk import finished", slog.Int("imported", res.ImportedCount), slog.Int("failed", res.ErrorCount))
	s.metrics.RecordMiraclesImported(res.ImportedCount, res.ErrorCount)
	if res.ImportedCount > 0 {
		s.invalidate(ctx, statsKey, filtersKey)
	}
	return res
}

// Filters возвращает отсортированные значения стран и веков.
func (s *Service) Filters(ctx context.Context) (*models.Filters, error) {
	const op = "miracle.Filters"

	var cached models.Filters
	if found, _ := s.cache.Get(ctx, filtersKey, &cached); found {
		return &cached, nil
	}

	countries, err := s.repo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	centuries, err := s.repo.ListCenturies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f := &models.Filters{Countries: nonNil(countries), Centuries: nonNil(centuries)}

	if err := s.cache.Set(ctx, filtersKey, f, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", filtersKey), sl.Err(err))
	}
	return f, nil
}

// Stats возвращает агрегаты каталога.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	const op = "miracle.Stats"

	var cached models.Stats
	if found, _ := s.cache.Get(ctx, statsKey, &cached); found {
		return &cached, nil
	}

	st, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, statsKey, st, s.cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", statsKey), sl.Err(err))
	}
	return &st, nil
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn("failed to remove from cache", slog.Any("keys", keys), sl.Err(err))
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
