package line_webhook

import (
	"context"

	"github.com/m04kA/SMC-ReservationShowcase/internal/config"
	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
)

// Catalog интерфейс каталога шаблонов бизнесов
type Catalog interface {
	Get(businessType domain.BusinessType) (*domain.BusinessConfig, error)
}

// LineClient интерфейс клиента LINE Messaging API
type LineClient interface {
	ReplyMessage(ctx context.Context, channelAccessToken string, reply line.ReplyRequest) error
}

// Channels интерфейс получения настроек каналов LINE
type Channels interface {
	Channel(businessType string) (config.LineChannel, bool)
}

// Metrics интерфейс метрик webhook
type Metrics interface {
	IncWebhookEvent(business, eventType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
