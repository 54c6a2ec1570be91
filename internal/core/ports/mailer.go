package ports

import "context"

// Mailer sends rendered notification mails to deliverymen.
type Mailer interface {
	// Send delivers an HTML mail to a single recipient.
	Send(ctx context.Context, to, toName, subject, htmlBody string) error
}
