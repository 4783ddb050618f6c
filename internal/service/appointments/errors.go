package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда мастер отсутствует в каталоге
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidStatus возвращается при недопустимом статусе или переходе статуса
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrSlotTaken возвращается, когда обновление переносит запись в занятый слот
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
