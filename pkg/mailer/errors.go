package mailer

import "errors"

var (
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrTooManyRecipients = errors.New("mailer.errors.too_many_recipients")
	ErrConnection        = errors.New("mailer.errors.connection_failed")
	ErrAttachment        = errors.New("mailer.errors.attachment_unreadable")
)
