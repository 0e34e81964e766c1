package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const TemplateWelcome = "welcome"

var welcomeTpl = template.Must(template.New("welcome").Parse(`<!doctype html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to {{.AppName}}, {{.Username}}!</h2>
    <p>Your account is ready. Sign in, add the gaming devices you use, and
    share your first post.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this
    account, you can safely ignore this email.</p>
  </body>
</html>`))

// RenderWelcome renders the welcome mail for a freshly registered user.
func RenderWelcome(data map[string]any) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err = welcomeTpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	subject = fmt.Sprintf("Welcome to %v", data["AppName"])
	text = fmt.Sprintf("Welcome to %v, %v! Your account is ready.", data["AppName"], data["Username"])
	return subject, text, buf.String(), nil
}

// NewWelcomeJob builds the queue payload the email worker understands.
func NewWelcomeJob(to, appName, username string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data: map[string]any{
			"AppName":  appName,
			"Username": username,
		},
	}
}
