package config

import "errors"

var (
	// ErrDecodeFile возвращается при ошибке разбора TOML файла
	ErrDecodeFile = errors.New("config: failed to decode file")

	// ErrReadEnv возвращается при ошибке чтения переменных окружения
	ErrReadEnv = errors.New("config: failed to read environment")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
