package memory

import "github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/reservation"

// ErrReservationNotFound общая ошибка "не найдено" для всех реализаций хранилища
var ErrReservationNotFound = reservation.ErrReservationNotFound
