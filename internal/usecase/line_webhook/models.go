package line_webhook

import "github.com/m04kA/SMC-ReservationShowcase/internal/domain"

// Request входящий webhook запрос
type Request struct {
	BusinessType domain.BusinessType
	Body         []byte // Сырое тело, по нему считается подпись
	Signature    string // Значение заголовка X-Line-Signature
}

// Response результат обработки webhook
type Response struct {
	Events  int // Получено событий
	Replied int // Отправлено ответов
}

// businessInfo данные бизнеса, которые попадают в ответы бота
type businessInfo struct {
	Name           string
	WelcomeMessage string
	BookingURL     string
	Hours          string
	ClosedDays     string
	Address        string
	Phone          string
}
