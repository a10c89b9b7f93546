// Package notifier пересылает сообщения обратной связи на почтовый ящик редакции.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"github.com/magabrotheeeer/miracle-catalog/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/miracle-catalog/internal/lib/smtp"
	"github.com/magabrotheeeer/miracle-catalog/internal/models"
)

var typeTitles = map[string]string{
	models.ContactTypeQuestion:   "Dúvida",
	models.ContactTypeComplaint:  "Reclamação",
	models.ContactTypeSuggestion: "Sugestão",
}

// Service отправляет письма о новых сообщениях обратной связи.
type Service struct {
	transport smtp.Dialer
	inbox     string
	log       *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(log *slog.Logger, transport smtp.Dialer, inbox string) *Service {
	return &Service{
		transport: transport,
		inbox:     inbox,
		log:       log,
	}
}

// HandleContactCreated разбирает событие contact.created и отправляет письмо.
// Неразбираемое тело возвращается как rabbitmq.Permanent и в очередь не попадает.
func (s *Service) HandleContactCreated(_ context.Context, body []byte) error {
	const op = "notifier.HandleContactCreated"

	var msg models.ContactMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return rabbitmq.Permanent(fmt.Errorf("%s: error unmarshalling message: %w", op, err))
	}

	if err := s.sendEmail(s.inbox, msg.Email, subjectFor(msg), bodyFor(msg)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("contact notification sent", slog.String("contact_id", msg.ID))
	return nil
}

func subjectFor(msg models.ContactMessage) string {
	title, ok := typeTitles[msg.Type]
	if !ok {
		title = msg.Type
	}
	if msg.Subject == "" {
		return "[" + title + "] Nova mensagem de contato"
	}
	return "[" + title + "] " + msg.Subject
}

func bodyFor(msg models.ContactMessage) string {
	return fmt.Sprintf("Nova mensagem recebida em %s\r\n\r\nDe: %s\r\nTipo: %s\r\n\r\n%s\r\n",
		msg.CreatedAt.UTC().Format("2006-01-02 15:04 MST"), msg.Email, msg.Type, msg.Message)
}

// headerSafe убирает переводы строк, чтобы пользовательский ввод не добавил заголовков.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func (s *Service) sendEmail(to, replyTo, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.From(),
		"To: " + to,
		"Reply-To: " + headerSafe(replyTo),
		"Subject: " + mime.QEncoding.Encode("UTF-8", headerSafe(subject)),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.From()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.From()), sl.Err(err))
		return err
	}
	if err := client.Rcpt(to); err != nil {
		s.log.Error("failed to set RCPT TO", slog.String("recipient", to), sl.Err(err))
		return err
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}
	return nil
}
