// Package auth содержит логику регистрации, входа и определения
// текущего пользователя по bearer-токену.
//
// Service — единственная точка, через которую HTTP-слой получает
// пользователя запроса. Данных о пользователях между вызовами сервис не хранит.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/miracle-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/miracle-catalog/internal/metrics"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
	"github.com/magabrotheeeer/miracle-catalog/internal/storage"
)

const dummyPassword = "not-a-real-account-password"

// TokenType — тип выдаваемого токена в ответе клиенту.
const TokenType = "bearer"

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет пользователя, при повторном email возвращает storage.ErrUserExists.
	CreateUser(ctx context.Context, user models.User) error
	// GetUserByEmail возвращает пользователя или storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID возвращает пользователя или storage.ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordHasher хеширует и проверяет пароли.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// Session — результат успешной регистрации или входа.
type Session struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Service отвечает за регистрацию, вход и проверку токенов.
type Service struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  jwt.Maker
	metrics metrics.Recorder
	now     func() time.Time

	// dummyHash проверяется при неизвестном email, чтобы время ответа
	// не выдавало, зарегистрирован ли адрес.
	dummyOnce sync.Once
	dummyHash string
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник времени для меток created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMetrics включает учёт попыток регистрации и входа.
func WithMetrics(m metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, hasher PasswordHasher, tokens jwt.Maker, opts ...Option) *Service {
	s := &Service{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		metrics: metrics.Nop{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register создает пользователя и сразу выдает ему токен.
func (s *Service) Register(ctx context.Context, email, name, rawPassword string) (session *Session, err error) {
	const op = "auth.Register"
	defer func() { s.metrics.RecordAuth("register", resultLabel(err)) }()

	_, err = s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrDuplicateEmail
	case !errors.Is(err, storage.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    s.now().UTC(),
	}
	if err = s.users.CreateUser(ctx, user); err != nil {
		// Параллельная регистрация того же email упирается в уникальный индекс.
		if errors.Is(err, storage.ErrUserExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.issue(op, &user)
}

// Login проверяет пароль и выдает токен.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (session *Session, err error) {
	const op = "auth.Login"
	defer func() { s.metrics.RecordAuth("login", resultLabel(err)) }()

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.verifyDummy(rawPassword)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := s.hasher.Verify(rawPassword, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("%s: stored hash for user %s: %w", op, user.ID, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.issue(op, user)
}

// Resolve определяет пользователя по bearer-токену.
//
// Все причины отказа возвращаются как *AuthError, совместимый с ErrUnauthenticated.
// Прочие ошибки означают сбой хранилища.
func (s *Service) Resolve(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.Resolve"

	if token == "" {
		return nil, &AuthError{Reason: ReasonMissingToken}
	}

	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &AuthError{Reason: ReasonTokenExpired, Err: err}
		}
		return nil, &AuthError{Reason: ReasonInvalidToken, Err: err}
	}

	user, err := s.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, &AuthError{Reason: ReasonUserNotFound, Err: err}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// verifyDummy тратит на неизвестный email столько же bcrypt-работы, сколько на проверку пароля.
// Хэш вычисляется один раз с той же стоимостью, что и настоящие.
func (s *Service) verifyDummy(rawPassword string) {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash(dummyPassword)
		if err == nil {
			s.dummyHash = hashed
		}
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.hasher.Verify(rawPassword, s.dummyHash)
}

func (s *Service) issue(op string, user *models.User) (*Session, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Session{
		AccessToken: token,
		TokenType:   TokenType,
		User:        user,
	}, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrDuplicateEmail):
		return "duplicate_email"
	default:
		return "error"
	}
}
