package line_webhook

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/usecase/line_webhook"
)

type WebhookUseCase interface {
	Execute(ctx context.Context, req *line_webhook.Request) (*line_webhook.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
