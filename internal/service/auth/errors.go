package auth

import "errors"

var (
	// ErrBusinessNotFound возвращается для неизвестного типа бизнеса
	ErrBusinessNotFound = errors.New("auth: business not found")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для поддельного, просроченного или поврежденного токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrForbidden возвращается, если токен выдан для другого бизнеса
	ErrForbidden = errors.New("auth: token is not valid for this business")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
