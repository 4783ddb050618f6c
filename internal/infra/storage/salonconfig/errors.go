package salonconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация еще не сохранена
	ErrConfigNotFound = errors.New("salonconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("salonconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("salonconfig.repository: failed to execute query")

	// ErrEncode возвращается при ошибке сериализации конфигурации
	ErrEncode = errors.New("salonconfig.repository: failed to encode config")

	// ErrDecode возвращается при ошибке десериализации конфигурации
	ErrDecode = errors.New("salonconfig.repository: failed to decode config")
)
