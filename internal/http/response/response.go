// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Успешные ответы отдают ресурс как есть,
// ошибки и сообщения валидации приходят в едином формате {"detail": "..."}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — тело ответа с ошибкой. Клиент читает текст из поля detail.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Miracle not found"`
}

// Message — тело ответа операций, которые не возвращают ресурс.
type Message struct {
	Message string `json:"message" example:"Miracle deleted"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Detail: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	return ErrorResponse{Detail: ValidationMessage(errs)}
}

// ValidationMessage переводит ошибки валидатора в одну строку.
func ValidationMessage(errs validator.ValidationErrors) string {
	errsMsgs := make([]string, 0, len(errs))

	for _, err := range errs {
		field := err.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", field))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", field))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", field, err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", field, err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of [%s]", field, err.Param()))
		case "uuid":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only uuid", field))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", field))
		}
	}
	return strings.Join(errsMsgs, ", ")
}
