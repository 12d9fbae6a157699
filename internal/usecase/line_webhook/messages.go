package line_webhook

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/integrations/line"
)

// Данные postback из rich menu
const (
	postbackReserve = "action=reserve"
	postbackCheck   = "action=check"
	postbackInfo    = "action=info"
)

const (
	followSuffix   = "\n\n下のメニューから予約できます。"
	bookingAltText = "予約はこちらから"
	bookingTitle   = "ご予約"
	helpText       = "ご質問ありがとうございます。\n\n「予約」→ 予約ページを開く\n「営業時間」→ 営業時間を確認\n「住所」→ 店舗情報を確認\n\nまたは下のメニューからお選びください。"
)

var (
	reserveKeywords = []string{"予約", "よやく"}
	hoursKeywords   = []string{"営業", "時間"}
	accessKeywords  = []string{"場所", "住所", "アクセス"}
)

// bookingURL ссылка на форму бронирования: LIFF, если задан, иначе демо-страница
func bookingURL(baseURL, liffID string, businessType domain.BusinessType) string {
	if liffID != "" {
		return "https://liff.line.me/" + liffID
	}
	return fmt.Sprintf("%s/demo/%s", strings.TrimRight(baseURL, "/"), businessType)
}

func newBusinessInfo(cfg *domain.BusinessConfig, url string) businessInfo {
	return businessInfo{
		Name:           cfg.Name,
		WelcomeMessage: fmt.Sprintf("%sの公式アカウントです%s\nお友だち追加ありがとうございます！", cfg.Name, cfg.Icon),
		BookingURL:     url,
		Hours:          cfg.Hours,
		ClosedDays:     cfg.Closed,
		Address:        cfg.Address,
		Phone:          cfg.Phone,
	}
}

// replyFor подбирает ответ на событие. nil - событие остается без ответа
func replyFor(event line.Event, info businessInfo) []line.Message {
	if event.ReplyToken == "" {
		return nil
	}

	switch event.Type {
	case line.EventTypeFollow:
		return []line.Message{line.TextMessage(info.WelcomeMessage + followSuffix)}

	case line.EventTypeMessage:
		if event.Message == nil || event.Message.Type != line.MessageTypeText {
			return nil
		}
		return []line.Message{replyForText(strings.ToLower(event.Message.Text), info)}

	case line.EventTypePostback:
		if event.Postback == nil {
			return nil
		}
		return replyForPostback(event.Postback.Data, info)
	}

	return nil
}

func replyForText(text string, info businessInfo) line.Message {
	switch {
	case containsAny(text, reserveKeywords):
		return line.ButtonsMessage(bookingAltText, bookingTitle,
			"下のボタンから予約ページを開けます", "予約する", info.BookingURL)
	case containsAny(text, hoursKeywords):
		return line.TextMessage(hoursText(info))
	case containsAny(text, accessKeywords):
		return line.TextMessage(fmt.Sprintf("【住所】\n%s\n\n【電話番号】\n%s", info.Address, info.Phone))
	default:
		return line.TextMessage(helpText)
	}
}

func replyForPostback(data string, info businessInfo) []line.Message {
	switch data {
	case postbackReserve:
		return []line.Message{line.ButtonsMessage(bookingAltText, bookingTitle,
			"予約ページを開いて、日時をお選びください", "予約ページを開く", info.BookingURL)}
	case postbackCheck:
		return []line.Message{line.TextMessage("予約確認機能は現在準備中です。\nお電話でもご確認いただけます。\n\n" + info.Phone)}
	case postbackInfo:
		return []line.Message{line.TextMessage(fmt.Sprintf("【%s】\n\n【住所】\n%s\n\n【電話番号】\n%s\n\n%s",
			info.Name, info.Address, info.Phone, hoursText(info)))}
	}
	return nil
}

func hoursText(info businessInfo) string {
	return fmt.Sprintf("【営業時間】\n%s\n\n【定休日】\n%s", info.Hours, info.ClosedDays)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
