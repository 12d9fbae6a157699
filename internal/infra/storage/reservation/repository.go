package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/types"
)

const table = "reservations"

var columns = []string{
	"id",
	"business_type",
	"reservation_number",
	"customer_name",
	"customer_name_kana",
	"phone",
	"email",
	"date",
	"time",
	"services",
	"total_duration",
	"total_price",
	"party_size",
	"seating_preference",
	"allergies",
	"insurance_type",
	"occasion",
	"birthdate",
	"notes",
	"status",
	"created_at",
}

// Repository репозиторий бронирований в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование. Если ID не задан, генерируется UUID
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	services, err := json.Marshal(res.Services)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeServices, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:len(columns)-1]...).
		Values(
			res.ID,
			string(res.BusinessType),
			res.ReservationNumber,
			res.CustomerName,
			res.CustomerKana,
			res.CustomerPhone,
			res.CustomerEmail,
			res.Date.Format(domain.DateFormat),
			res.Time.String(),
			string(services),
			res.TotalDuration,
			res.TotalPrice,
			res.PartySize,
			res.Seating,
			res.Allergies,
			res.InsuranceType,
			res.Occasion,
			res.Birthdate,
			res.Notes,
			string(res.Status),
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(id); err != nil {
		// Postgres отклонит запрос с невалидным UUID, такого бронирования быть не может
		return nil, ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования по фильтру, отсортированные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"business_type": string(filter.BusinessType)})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": filter.DateTo.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.OrderBy("date ASC", "time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// BookedTimes возвращает время начала неотмененных бронирований на дату
func (r *Repository) BookedTimes(ctx context.Context, businessType domain.BusinessType, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("time").
		From(table).
		Where(squirrel.Eq{"business_type": string(businessType)}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, types.TimeString(t))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Counts считает бронирования для статистики за один запрос
// today и monthStart - календарные даты
func (r *Repository) Counts(ctx context.Context, businessType domain.BusinessType, today, monthStart time.Time) (domain.ReservationCounts, error) {
	todayStr := today.Format(domain.DateFormat)
	monthStr := monthStart.Format(domain.DateFormat)
	cancelled := string(domain.StatusCancelled)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date = ? AND status <> ?)", todayStr, cancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date >= ? AND status <> ?)", monthStr, cancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date >= ? AND status = ?)", monthStr, cancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE date >= ?)", monthStr)).
		From(table).
		Where(squirrel.Eq{"business_type": string(businessType)}).
		ToSql()

	if err != nil {
		return domain.ReservationCounts{}, fmt.Errorf("%w: Counts - build select query: %v", ErrBuildQuery, err)
	}

	var counts domain.ReservationCounts
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&counts.Today,
		&counts.Month,
		&counts.MonthCancelled,
		&counts.MonthTotal,
	)
	if err != nil {
		return domain.ReservationCounts{}, fmt.Errorf("%w: Counts - scan counts: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountByDay возвращает число неотмененных бронирований по дням периода [from, to]
func (r *Repository) CountByDay(ctx context.Context, businessType domain.BusinessType, from, to time.Time) ([]domain.DayCount, error) {
	query, args, err := psqlbuilder.Select("date", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"business_type": string(businessType)}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		GroupBy("date").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DayCount, 0)
	for rows.Next() {
		var day domain.DayCount
		if err := rows.Scan(&day.Date, &day.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByDay - scan row: %v", ErrScanRow, err)
		}
		day.Date = domain.DateOf(day.Date)
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDay - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку в бронирование (порядок колонок - columns)
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res          domain.Reservation
		businessType string
		status       string
		slot         string
		services     []byte
	)

	err := row.Scan(
		&res.ID,
		&businessType,
		&res.ReservationNumber,
		&res.CustomerName,
		&res.CustomerKana,
		&res.CustomerPhone,
		&res.CustomerEmail,
		&res.Date,
		&slot,
		&services,
		&res.TotalDuration,
		&res.TotalPrice,
		&res.PartySize,
		&res.Seating,
		&res.Allergies,
		&res.InsuranceType,
		&res.Occasion,
		&res.Birthdate,
		&res.Notes,
		&status,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.BusinessType = domain.BusinessType(businessType)
	res.Status = domain.ReservationStatus(status)
	res.Date = domain.DateOf(res.Date)
	res.Time = types.TimeString(slot)
	if normalized, err := types.NewTimeStringFromString(slot); err == nil {
		res.Time = normalized
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &res.Services); err != nil {
			return nil, fmt.Errorf("decode services: %w", err)
		}
	}

	return &res, nil
}
