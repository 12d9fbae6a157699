package line_webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
)

// UseCase use case обработки webhook LINE
type UseCase struct {
	catalog  Catalog
	client   LineClient
	channels Channels
	baseURL  string
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, client LineClient, channels Channels, baseURL string, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		client:   client,
		channels: channels,
		baseURL:  baseURL,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute проверяет подпись и отвечает на события. События обрабатываются параллельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	cfg, err := uc.catalog.Get(req.BusinessType)
	if err != nil {
		uc.logger.Warn("LineWebhook: business=%s not found", req.BusinessType)
		return nil, ErrBusinessNotFound
	}

	channel, ok := uc.channels.Channel(string(req.BusinessType))
	if !ok || !channel.Configured() {
		uc.logger.Error("LineWebhook: LINE credentials not configured for %s", req.BusinessType)
		return nil, ErrNotConfigured
	}

	if req.Signature == "" {
		return nil, ErrMissingSignature
	}
	if !line.ValidateSignature(req.Body, channel.ChannelSecret, req.Signature) {
		uc.logger.Warn("LineWebhook: invalid signature for business=%s", req.BusinessType)
		return nil, ErrInvalidSignature
	}

	var payload line.WebhookRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	// "events":[] допустим, отсутствие массива нет
	if payload.Events == nil {
		return nil, fmt.Errorf("%w: events array is missing", ErrInvalidPayload)
	}

	info := newBusinessInfo(cfg, bookingURL(uc.baseURL, channel.LiffID, cfg.Type))

	var replied atomic.Int32
	// Ошибка одного ответа не отменяет остальные: каждый пользователь получает свой ответ
	var g errgroup.Group
	for _, event := range payload.Events {
		g.Go(func() error {
			uc.metrics.IncWebhookEvent(string(cfg.Type), event.Type)

			messages := replyFor(event, info)
			if len(messages) == 0 {
				return nil
			}

			err := uc.client.ReplyMessage(ctx, channel.ChannelAccessToken, line.ReplyRequest{
				ReplyToken: event.ReplyToken,
				Messages:   messages,
			})
			if err != nil {
				return fmt.Errorf("%w: event=%s: %v", ErrReplyFailed, event.Type, err)
			}
			replied.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("LineWebhook: business=%s: %v", req.BusinessType, err)
		return nil, err
	}

	uc.logger.Info("LineWebhook: business=%s, events=%d, replied=%d",
		req.BusinessType, len(payload.Events), replied.Load())

	return &Response{Events: len(payload.Events), Replied: int(replied.Load())}, nil
}

// RichMenu возвращает шаблон rich menu для бизнеса
func (uc *UseCase) RichMenu(businessType domain.BusinessType) (*line.RichMenu, error) {
	cfg, err := uc.catalog.Get(businessType)
	if err != nil {
		return nil, ErrBusinessNotFound
	}
	menu := RichMenuTemplate(cfg)
	return &menu, nil
}
