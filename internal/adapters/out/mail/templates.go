package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"parcels/internal/core/domain/services"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// NewDeliveryMail renders the mail announcing a freshly assigned delivery.
func NewDeliveryMail(notice services.NewDeliveryNotice) (subject, body string, err error) {
	subject = fmt.Sprintf("New delivery: %s", notice.Product)
	body, err = render("new_delivery.html.tmpl", notice)
	return subject, body, err
}

// DeliveryCanceledMail renders the mail announcing a problem-driven cancellation.
func DeliveryCanceledMail(notice services.DeliveryCanceledNotice) (subject, body string, err error) {
	subject = fmt.Sprintf("Delivery canceled: %s", notice.Product)
	body, err = render("delivery_canceled.html.tmpl", notice)
	return subject, body, err
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
