package worker

// email_worker.go
// Processes templated email jobs from QueueEmail: welcome emails with the
// confirmation link, account-activated and password-reset notices.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/panteragalgo/awa-app/internal/emailtpl"
	"github.com/panteragalgo/awa-app/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail  string            `json:"to_email"`
	Template emailtpl.Template `json:"template"`
	Data     emailtpl.Data     `json:"data"`
}

// EmailWorker renders the template and sends the email via SMTP.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return nil
	}

	html, err := emailtpl.Render(payload.Template, payload.Data)
	if err != nil {
		return err
	}

	subject := emailtpl.Subjects[payload.Template]
	if err := w.mailer.SendHTML(payload.ToEmail, subject, html, ""); err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}
	log.Info().Str("to", payload.ToEmail).Str("template", string(payload.Template)).Msg("email_worker: sent")
	return nil
}
