package reservation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/ptr"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

const reservationID = "0b7c1d36-5a7e-4c55-9d3b-2f1f6a0e8c11"

var testDate = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), sqlMock
}

func reservationRow() *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		reservationID,
		"salon",
		"SALO-20260311-042",
		"山田 花子",
		"ヤマダ ハナコ",
		"090-1234-5678",
		"hanako@example.com",
		testDate,
		"9:00",
		`[{"id":"cut","name":"カット","duration":60,"price":4400}]`,
		60,
		4400,
		nil,
		nil,
		nil,
		nil,
		nil,
		nil,
		"明るめのカラー希望",
		"確定",
		testDate,
	)
}

func TestRepository_Create(t *testing.T) {
	repo, sqlMock := newRepository(t)
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	sqlMock.ExpectQuery(`INSERT INTO reservations \(id,business_type,.*\) VALUES \(\$1,.*\) RETURNING created_at`).
		WithArgs(
			sqlmock.AnyArg(), "restaurant", "REST-20260311-007", "中村 誠", "ナカムラ マコト", "090-8888-9999",
			"makoto@example.com", "2026-03-11", "12:00", `[{"id":"lunch","name":"ランチコース","duration":90,"price":3300}]`,
			90, 3300, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), "確定",
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	res, err := repo.Create(context.Background(), &domain.Reservation{
		BusinessType:      domain.BusinessRestaurant,
		ReservationNumber: "REST-20260311-007",
		CustomerName:      "中村 誠",
		CustomerKana:      "ナカムラ マコト",
		CustomerPhone:     "090-8888-9999",
		CustomerEmail:     "makoto@example.com",
		Date:              testDate,
		Time:              "12:00",
		Services:          []domain.ReservedService{{ID: "lunch", Name: "ランチコース", Duration: 90, Price: ptr.Ptr(3300)}},
		TotalDuration:     90,
		TotalPrice:        3300,
		PartySize:         ptr.Ptr(2),
		Status:            domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, createdAt, res.CreatedAt)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery("INSERT INTO reservations").WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), &domain.Reservation{BusinessType: domain.BusinessSalon, Date: testDate, Time: "10:00"})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery(`SELECT .* FROM reservations WHERE id = \$1`).
		WithArgs(reservationID).
		WillReturnRows(reservationRow())

	res, err := repo.GetByID(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, domain.BusinessSalon, res.BusinessType)
	assert.Equal(t, types.TimeString("09:00"), res.Time)
	assert.Equal(t, testDate, res.Date)
	require.Len(t, res.Services, 1)
	assert.Equal(t, "カット", res.Services[0].Name)
	assert.Nil(t, res.PartySize)
	require.NotNil(t, res.Notes)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery("SELECT .* FROM reservations").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), reservationID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// невалидный UUID не доходит до базы
	_, err = repo.GetByID(context.Background(), "mock-salon-1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery(`SELECT .* FROM reservations WHERE business_type = \$1 AND date = \$2 AND status = \$3 ORDER BY date ASC, time ASC`).
		WithArgs("salon", "2026-03-11", "確定").
		WillReturnRows(reservationRow())

	list, err := repo.List(context.Background(), domain.ReservationFilter{
		BusinessType: domain.BusinessSalon,
		Date:         &testDate,
		Status:       ptr.Ptr(domain.StatusConfirmed),
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, reservationID, list[0].ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_BookedTimes(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery(`SELECT time FROM reservations WHERE business_type = \$1 AND date = \$2 AND status <> \$3`).
		WithArgs("clinic", "2026-03-11", "キャンセル").
		WillReturnRows(sqlmock.NewRows([]string{"time"}).AddRow("9:00").AddRow("10:30"))

	times, err := repo.BookedTimes(context.Background(), domain.BusinessClinic, testDate)

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"9:00", "10:30"}, times)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "updated", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, wantErr: ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, sqlMock := newRepository(t)

			sqlMock.ExpectExec(`UPDATE reservations SET status = \$1 WHERE id = \$2`).
				WithArgs("完了", reservationID).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.UpdateStatus(context.Background(), reservationID, domain.StatusCompleted)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Counts(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery(`SELECT COUNT\(\*\) FILTER \(WHERE date = \$1 AND status <> \$2\), .* FROM reservations WHERE business_type = \$8`).
		WithArgs("2026-03-11", "キャンセル", "2026-03-01", "キャンセル", "2026-03-01", "キャンセル", "2026-03-01", "restaurant").
		WillReturnRows(sqlmock.NewRows([]string{"today", "month", "cancelled", "total"}).AddRow(2, 9, 1, 10))

	counts, err := repo.Counts(context.Background(), domain.BusinessRestaurant, testDate, domain.FirstOfMonth(testDate))

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCounts{Today: 2, Month: 9, MonthCancelled: 1, MonthTotal: 10}, counts)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRepository_CountByDay(t *testing.T) {
	repo, sqlMock := newRepository(t)

	sqlMock.ExpectQuery(`SELECT date, COUNT\(\*\) FROM reservations .* GROUP BY date ORDER BY date ASC`).
		WithArgs("salon", "2026-03-01", "2026-03-31", "キャンセル").
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).
			AddRow(testDate, 3).
			AddRow(testDate.AddDate(0, 0, 2), 1))

	days, err := repo.CountByDay(context.Background(), domain.BusinessSalon,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, domain.DayCount{Date: testDate, Count: 3}, days[0])
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS reservations").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.Contains(t, Schema(), "idx_reservations_business_date")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
