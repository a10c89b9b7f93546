// Package models содержит доменные модели каталога: пользователя,
// описание чуда со всеми вложенными структурами, сообщения обратной связи
// и вспомогательные типы фильтров и агрегатов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string    `json:"id"`         // Уникальный идентификатор пользователя
	Email        string    `json:"email"`      // Электронная почта (уникальная)
	Name         string    `json:"name"`       // Отображаемое имя
	PasswordHash string    `json:"-"`          // Хэш пароля, наружу не отдаётся
	CreatedAt    time.Time `json:"created_at"` // Дата регистрации в UTC
}
