// Package jwt реализует выпуск и проверку подписанных JWT токенов.
//
// Токен несёт только subject (идентификатор пользователя), время выпуска
// и время истечения. Сервер токены не хранит: валидность определяется
// подписью и полем exp.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки проверки токена. Вызывающий код различает их через errors.Is.
var (
	// ErrTokenExpired — подпись верна, но срок действия истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed — токен не разбирается, подпись неверна или алгоритм не тот.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims описывает полезную нагрузку токена.
type Claims struct {
	jwt.RegisteredClaims
}

// Maker описывает выпуск и проверку токенов.
type Maker interface {
	// GenerateToken выпускает токен для пользователя.
	GenerateToken(userID string) (string, error)
	// ParseToken проверяет токен и возвращает его claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl подписывает токены симметричным ключом алгоритмом HS256.
type MakerImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker создаёт MakerImpl на основе секретного ключа и времени жизни токена.
func NewJWTMaker(secretKey string, ttl time.Duration, opts ...Option) *MakerImpl {
	m := &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
