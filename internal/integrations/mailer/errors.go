package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда SMTP-сервер не принял письмо
	ErrSendFailed = errors.New("mailer: failed to send email")
)
