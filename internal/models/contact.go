package models

import "time"

// Типы обращений, которые предлагает форма обратной связи.
const (
	ContactTypeQuestion   = "duvida"
	ContactTypeComplaint  = "reclamacao"
	ContactTypeSuggestion = "sugestao"
)

// ContactMessage — сообщение из формы обратной связи.
type ContactMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageInput — тело запроса на отправку сообщения.
type ContactMessageInput struct {
	Type    string `json:"type" validate:"required,oneof=duvida reclamacao sugestao"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UploadedFile описывает сохранённый файл.
type UploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
}
