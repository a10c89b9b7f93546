package auth

import "errors"

// Ошибки сервиса аутентификации.
var (
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail — email уже зарегистрирован.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUnauthenticated — запрос не удалось связать с пользователем.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Причины отказа в аутентификации.
const (
	ReasonMissingToken = "missing token"
	ReasonTokenExpired = "token expired"
	ReasonInvalidToken = "invalid token"
	ReasonUserNotFound = "user not found"
)

// AuthError уточняет причину ErrUnauthenticated.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	return ErrUnauthenticated.Error() + ": " + e.Reason
}

// Is делает errors.Is(err, ErrUnauthenticated) истинным для любой причины.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthenticated
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
