package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"wavehouse/models"
)

// Notifier delivers studio notifications.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

var subjects = map[string]string{
	models.NotifyStudioAccess:    "New studio booking request",
	models.NotifyEngineerRequest: "New engineer request",
	models.NotifyMixingRequest:   "New mixing request",
	models.NotifyContact:         "New contact message",
}

var bodyTmpl = template.Must(template.New("notification").Parse(`<h2>{{.Title}}</h2>
<table cellpadding="4">
<tr><td><strong>Name</strong></td><td>{{.N.Name}}</td></tr>
<tr><td><strong>Email</strong></td><td><a href="mailto:{{.N.Email}}">{{.N.Email}}</a></td></tr>
{{- if .N.Phone}}
<tr><td><strong>Phone</strong></td><td>{{.N.Phone}}</td></tr>
{{- end}}
{{- if .N.Date}}
<tr><td><strong>Date</strong></td><td>{{.N.Date}}</td></tr>
<tr><td><strong>Time</strong></td><td>{{.N.Time}}</td></tr>
{{- end}}
{{- if .N.Duration}}
<tr><td><strong>Duration</strong></td><td>{{.N.Duration}} hours</td></tr>
{{- end}}
{{- if .N.ProjectType}}
<tr><td><strong>Project</strong></td><td>{{.N.ProjectType}}</td></tr>
{{- end}}
</table>
{{- if .N.Message}}
<p><strong>Message</strong></p>
<p>{{.N.Message}}</p>
{{- end}}
{{- if .N.BookingID}}
<p style="color:#888">Reference {{.N.BookingID}}</p>
{{- end}}
`))

// Compose builds the subject and HTML body of a notification.
func Compose(n models.Notification) (string, string, error) {
	title, ok := subjects[n.Kind]
	if !ok {
		return "", "", fmt.Errorf("unknown notification kind %q", n.Kind)
	}
	subject := fmt.Sprintf("%s from %s", title, n.Name)

	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, struct {
		Title string
		N     models.Notification
	}{title, n}); err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}
	return subject, buf.String(), nil
}
