package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном имени пользователя или
	// пароле. Ошибка одинакова для обоих случаев, чтобы по ответу нельзя было
	// перебрать существующие имена.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
