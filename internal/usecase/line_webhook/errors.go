package line_webhook

import "errors"

var (
	// ErrBusinessNotFound возвращается для неизвестного типа бизнеса
	ErrBusinessNotFound = errors.New("line_webhook: business not found")

	// ErrNotConfigured возвращается, если для бизнеса не заданы секрет или токен канала
	ErrNotConfigured = errors.New("line_webhook: LINE channel is not configured")

	// ErrMissingSignature возвращается, если запрос пришел без подписи
	ErrMissingSignature = errors.New("line_webhook: signature is missing")

	// ErrInvalidSignature возвращается при несовпадении подписи
	ErrInvalidSignature = errors.New("line_webhook: invalid signature")

	// ErrInvalidPayload возвращается, если тело запроса не удалось разобрать
	ErrInvalidPayload = errors.New("line_webhook: invalid payload")

	// ErrReplyFailed возвращается, если не удалось отправить ответ хотя бы на одно событие
	ErrReplyFailed = errors.New("line_webhook: failed to reply")
)
