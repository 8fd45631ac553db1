package email

import (
	"fmt"
	"time"
)

// DegradedModeData describes a refresh failure for the ops alert email.
type DegradedModeData struct {
	Reason     string
	OccurredAt time.Time
	AppName    string
}

// BuildDegradedModeAlert creates the notice sent to operators when the
// dashboard falls back to the bundled dataset.
func BuildDegradedModeAlert(data DegradedModeData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Hospital Dashboard"
	}

	when := data.OccurredAt
	if when.IsZero() {
		when = time.Now()
	}

	subject := fmt.Sprintf("%s is serving offline data", appName)

	textBody := fmt.Sprintf(`The %s backend could not load live data from the upstream hospital API
and has fallen back to the bundled dataset.

Reason: %s
At:     %s

All collections are now the canned records. Live data returns on the next
successful refresh (restart the service or fix the upstream).`,
		appName, data.Reason, when.Format(time.RFC3339))

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">%s is serving offline data</h2>
    <p>The backend could not load live data from the upstream hospital API and has fallen back to the bundled dataset.</p>
    <p><strong>Reason:</strong> %s<br>
    <strong>At:</strong> %s</p>
    <p>Live data returns on the next successful refresh.</p>
</body>
</html>`,
		appName, data.Reason, when.Format(time.RFC3339))

	return Message{
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
