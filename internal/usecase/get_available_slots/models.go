package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessType domain.BusinessType // Тип бизнеса
	Date         time.Time           // Дата (полночь UTC)
	ServiceID    string              // Выбранная услуга (опционально, влияет на группы ресторана)
}

// Response модель ответа со слотами
type Response struct {
	Date         time.Time
	BusinessType domain.BusinessType
	ServiceID    string
	Groups       []domain.AvailableSlotGroup
}
