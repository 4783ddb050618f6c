package contact

// Notifier интерфейс отправки контактных заявок
type Notifier interface {
	SendContactForm(name, email, message string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
