package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"go-resto-backoffice/internal/mailer"

	"github.com/hibiken/asynq"
)

// Processor turns queued mutation events into emails for the configured
// recipient.
type Processor struct {
	mailer    mailer.Mailer
	recipient string
	appName   string
}

func NewProcessor(m mailer.Mailer, recipient, appName string) *Processor {
	return &Processor{mailer: m, recipient: recipient, appName: appName}
}

// NewServeMux registers all task handlers.
func (p *Processor) NewServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEntityMutationEmail, p.HandleEntityMutationEmail)
	return mux
}

func (p *Processor) HandleEntityMutationEmail(ctx context.Context, t *asynq.Task) error {
	var payload EntityMutationEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// payload rusak tidak akan membaik saat retry
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	subject, body := BuildMutationMessage(payload)
	htmlBody := fmt.Sprintf("<p>%s</p><p>— %s</p>", html.EscapeString(body), html.EscapeString(p.appName))
	textBody := fmt.Sprintf("%s\n\n— %s", body, p.appName)

	return p.mailer.Send(p.recipient, subject, htmlBody, textBody)
}

// BuildMutationMessage renders the Indonesian subject/body for one
// mutation event.
func BuildMutationMessage(payload EntityMutationEmailPayload) (subject, body string) {
	entityTitle := titleCase(payload.Entity)
	subject = "Notifikasi " + entityTitle

	names := strings.Join(payload.Names, ", ")
	switch payload.Action {
	case ActionStore:
		body = fmt.Sprintf("%s baru telah ditambahkan: %s.", entityTitle, names)
	case ActionUpdate:
		body = fmt.Sprintf("Data %s %s telah diperbarui.", payload.Entity, names)
	case ActionDestroy:
		body = fmt.Sprintf("%s berikut telah dihapus: %s.", entityTitle, names)
	default:
		body = fmt.Sprintf("Perubahan pada %s: %s.", payload.Entity, names)
	}
	return subject, body
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
