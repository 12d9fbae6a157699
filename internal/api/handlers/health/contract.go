package health

import "context"

// Pinger проверка доступности хранилища, nil если используется in-memory
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
