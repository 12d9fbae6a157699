package line

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("line client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от LINE
	ErrInvalidResponse = errors.New("line client: invalid response")

	// ErrUnauthorized возвращается, когда LINE отклонил токен канала
	ErrUnauthorized = errors.New("line client: channel access token rejected")
)
