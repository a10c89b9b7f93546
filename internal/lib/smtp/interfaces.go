// Package smtp предоставляет транспорт для отправки писем через SMTP.
package smtp

import "io"

// Client — сессия с почтовым сервером, через которую отправляется одно письмо.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Dialer открывает сессии с сервером. Адрес отправителя задаётся конфигом
// и одинаков для всех писем.
type Dialer interface {
	Connect() (Client, error)
	From() string
}

var _ Dialer = (*Transport)(nil)
