// Package mail owns contact-message delivery. Real delivery is an external
// collaborator behind the Mailer interface; the default implementation only
// logs the submission and performs no delivery.
package mail

import (
	"context"
	"log/slog"

	"github.com/Clara4555/ROOFTY/pkg/models"
	"github.com/google/uuid"
)

// Mailer delivers a contact message and returns a reference id for it.
type Mailer interface {
	Send(ctx context.Context, msg models.ContactMessage) (string, error)
}

// LogMailer records submissions in the log under a generated reference id.
type LogMailer struct {
	logger *slog.Logger
}

var _ Mailer = (*LogMailer)(nil)

// NewLogMailer wraps the given logger; a nil logger uses slog's default.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg models.ContactMessage) (string, error) {
	ref := uuid.NewString()
	m.logger.InfoContext(ctx, "contact form submission",
		slog.String("reference", ref),
		slog.String("name", msg.Name),
		slog.String("email", msg.Email),
		slog.String("phone", msg.Phone),
		slog.Int("message_len", len(msg.Message)),
	)
	return ref, nil
}
