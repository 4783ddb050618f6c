package mailer

import (
	"fmt"
	"net/smtp"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector интерфейс сборщика почтовых метрик
type MetricsCollector interface {
	ObserveMailSent(template string, err error)
}

// Client SMTP-клиент для писем-подтверждений.
// В выключенном состоянии (enabled=false, режим разработки) письма
// не отправляются, а целиком выводятся в лог.
type Client struct {
	addr    string
	from    string
	contact string // адрес салона для заявок с формы обратной связи
	enabled bool
	log     Logger
	metrics MetricsCollector
}

// NewClient создает новый SMTP-клиент
func NewClient(host string, port int, from string, enabled bool, log Logger) *Client {
	if from == "" {
		from = "info@lockenroll.de"
	}
	return &Client{
		addr:    fmt.Sprintf("%s:%d", host, port),
		from:    from,
		contact: from,
		enabled: enabled,
		log:     log,
	}
}

// WithContactAddress задает адрес получателя контактных заявок
func (c *Client) WithContactAddress(addr string) *Client {
	if addr != "" {
		c.contact = addr
	}
	return c
}

// WithMetrics включает сбор почтовых метрик
func (c *Client) WithMetrics(m MetricsCollector) *Client {
	c.metrics = m
	return c
}

func (c *Client) observe(template string, err error) {
	if c.metrics != nil {
		c.metrics.ObserveMailSent(template, err)
	}
}

// Send отправляет письмо с текстовой и HTML-версией
func (c *Client) Send(to, subject, textBody, htmlBody string) error {
	if !c.enabled {
		c.log.Info("mailer disabled, email to=%s subject=%q body:\n%s", to, subject, textBody)
		return nil
	}

	msg := buildMessage(c.from, to, subject, textBody, htmlBody)
	if err := smtp.SendMail(c.addr, nil, c.from, []string{to}, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("email sent to=%s subject=%q", to, subject)
	return nil
}

// buildMessage собирает multipart/alternative письмо (текст + HTML)
func buildMessage(from, to, subject, textBody, htmlBody string) []byte {
	const boundary = "lr-mail-boundary"

	msg := fmt.Sprintf("From: %s\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "MIME-Version: 1.0\r\n"
	msg += fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	msg += "\r\n"

	msg += fmt.Sprintf("--%s\r\n", boundary)
	msg += "Content-Type: text/plain; charset=utf-8\r\n\r\n"
	msg += textBody + "\r\n"

	if htmlBody != "" {
		msg += fmt.Sprintf("--%s\r\n", boundary)
		msg += "Content-Type: text/html; charset=utf-8\r\n\r\n"
		msg += htmlBody + "\r\n"
	}

	msg += fmt.Sprintf("--%s--\r\n", boundary)

	return []byte(msg)
}
