package reservation

import (
	"github.com/m04kA/SMC-ReservationShowcase/pkg/dbmetrics"
)

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
