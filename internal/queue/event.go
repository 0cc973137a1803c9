// Package queue moves outgoing mails through RabbitMQ: request handlers
// publish jobs and a background consumer delivers them.
package queue

import (
	"time"

	"github.com/cypu/rulebook-api/internal/mail"
)

// MailJob is the payload of one queued mail.
type MailJob struct {
	ID         string       `json:"id"`
	Message    mail.Message `json:"message"`
	EnqueuedAt time.Time    `json:"enqueued_at"`
}
