package salonconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация еще не сохранена
	ErrConfigNotFound = errors.New("salon config not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден в каталоге
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrDuplicateID возвращается при попытке добавить элемент с занятым ID
	ErrDuplicateID = errors.New("duplicate catalog id")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
