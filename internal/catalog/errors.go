package catalog

import "errors"

var (
	// ErrUnknownBusiness возвращается для неизвестного типа бизнеса
	ErrUnknownBusiness = errors.New("catalog: unknown business type")

	// ErrInvalidCatalog возвращается при некорректном файле шаблонов
	ErrInvalidCatalog = errors.New("catalog: invalid business templates")
)
