package admin_login

import "github.com/m04kA/SMC-ReservationShowcase/internal/service/auth/models"

type AuthService interface {
	Login(businessType string, req *models.LoginRequest) (*models.LoginResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
