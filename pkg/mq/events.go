package mq

// Ключи маршрутизации доменных событий
const (
	RoutingReservationCreated       = "reservation.created"
	RoutingReservationStatusChanged = "reservation.status_changed"
)
