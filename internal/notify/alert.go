package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Alijeyrad/hospital_backend/pkg/email"
)

// EmailAlerter emails operators when the dashboard enters degraded mode.
// With email disabled in config it quietly does nothing, following the
// same enabled-flag convention as the email client itself.
type EmailAlerter struct {
	client     *email.Client
	recipients []string
	appName    string
	logger     *slog.Logger
}

func NewEmailAlerter(client *email.Client, recipients []string, appName string, logger *slog.Logger) *EmailAlerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailAlerter{client: client, recipients: recipients, appName: appName, logger: logger}
}

func (a *EmailAlerter) DegradedMode(ctx context.Context, reason string) {
	if a.client == nil || !a.client.IsEnabled() || len(a.recipients) == 0 {
		return
	}

	msg := email.BuildDegradedModeAlert(email.DegradedModeData{
		Reason:     reason,
		OccurredAt: time.Now(),
		AppName:    a.appName,
	})
	msg.To = a.recipients

	if err := a.client.Send(ctx, msg); err != nil && !errors.Is(err, email.ErrDisabled{}) {
		a.logger.Warn("degraded-mode alert email failed", "error", err)
	}
}
