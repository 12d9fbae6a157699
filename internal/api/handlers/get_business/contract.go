package get_business

import "github.com/m04kA/SMC-ReservationShowcase/internal/domain"

// Catalog интерфейс каталога шаблонов бизнесов
type Catalog interface {
	Get(businessType domain.BusinessType) (*domain.BusinessConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
