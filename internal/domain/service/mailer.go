package service

import "context"

// Mailer delivers transactional email. Failures are reported to the caller;
// no retry policy exists below this interface.
type Mailer interface {
	// Send delivers a single HTML email to one recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
