// Package password реализует хеширование и проверку паролей на основе bcrypt.
//
// Hasher хранит стоимость (work factor), заданную в конфигурации при старте,
// и не имеет изменяемого состояния, поэтому безопасен для конкурентного использования.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes — предел длины пароля в байтах, после которого bcrypt отказывается хешировать.
const MaxBytes = 72

// ErrTooLong возвращается для пароля длиннее MaxBytes байт.
var ErrTooLong = errors.New("password exceeds 72 bytes")

// Hasher вычисляет bcrypt-хэши с фиксированной стоимостью.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Стоимость вне диапазона bcrypt считается ошибкой конфигурации.
func NewHasher(cost int) (*Hasher, error) {
	const op = "password.NewHasher"
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%s: cost %d out of range [%d, %d]", op, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash возвращает закодированный bcrypt-хэш с параметрами и случайной солью.
// Два вызова с одинаковым паролем дают разные строки.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	if len(password) > MaxBytes {
		return "", fmt.Errorf("%s: %w", op, ErrTooLong)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Verify сравнивает пароль с сохранённым хэшем.
//
// Несовпадение — это (false, nil). Ошибка возвращается только для
// повреждённого хэша: такая ситуация не должна выглядеть как неверный пароль.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	const op = "password.Verify"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", op, err)
	}
}
