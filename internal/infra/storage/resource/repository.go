package resource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kly4ev/SDA-BookingService/internal/domain"
	"github.com/kly4ev/SDA-BookingService/pkg/dbmetrics"
	"github.com/kly4ev/SDA-BookingService/pkg/psqlbuilder"
	"github.com/kly4ev/SDA-BookingService/pkg/types"
)

// Repository репозиторий для чтения бронируемых ресурсов
// Ресурсы и расписания салонов изменяются в сервисе управления салонами,
// здесь они только читаются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресурс вместе с недельным расписанием его салона
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"service_id",
		"master_id",
		"service_name",
		"duration_minutes",
		"price",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Resource
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.SalonID,
		&res.ServiceID,
		&res.MasterID,
		&res.ServiceName,
		&res.DurationMinutes,
		&res.Price,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	hours, err := r.getSalonHours(ctx, executor, res.SalonID)
	if err != nil {
		return nil, err
	}
	res.Hours = hours

	return &res, nil
}

// getSalonHours читает недельное расписание салона
// Дни без строки в salon_hours считаются закрытыми
func (r *Repository) getSalonHours(ctx context.Context, executor dbmetrics.DBExecutor, salonID int64) (domain.WeeklyHours, error) {
	var hours domain.WeeklyHours

	query, args, err := psqlbuilder.Select(
		"weekday",
		"is_open",
		"open_time",
		"close_time",
	).
		From("salon_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return hours, fmt.Errorf("%w: getSalonHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: getSalonHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var isOpen bool
		var openTime, closeTime sql.NullString

		if err := rows.Scan(&weekday, &isOpen, &openTime, &closeTime); err != nil {
			return hours, fmt.Errorf("%w: getSalonHours - scan row: %v", ErrScanRow, err)
		}

		schedule := domain.DaySchedule{IsOpen: isOpen}
		if isOpen {
			open, err := types.NewTimeStringFromString(openTime.String)
			if err != nil {
				return hours, fmt.Errorf("%w: salon=%d weekday=%d open_time: %v", ErrInvalidSchedule, salonID, weekday, err)
			}
			closeTS, err := types.NewTimeStringFromString(closeTime.String)
			if err != nil {
				return hours, fmt.Errorf("%w: salon=%d weekday=%d close_time: %v", ErrInvalidSchedule, salonID, weekday, err)
			}
			schedule.OpenTime = open
			schedule.CloseTime = closeTS
		}

		setDaySchedule(&hours, time.Weekday(weekday), schedule)
	}

	if err := rows.Err(); err != nil {
		return hours, fmt.Errorf("%w: getSalonHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

func setDaySchedule(hours *domain.WeeklyHours, weekday time.Weekday, schedule domain.DaySchedule) {
	switch weekday {
	case time.Monday:
		hours.Monday = schedule
	case time.Tuesday:
		hours.Tuesday = schedule
	case time.Wednesday:
		hours.Wednesday = schedule
	case time.Thursday:
		hours.Thursday = schedule
	case time.Friday:
		hours.Friday = schedule
	case time.Saturday:
		hours.Saturday = schedule
	case time.Sunday:
		hours.Sunday = schedule
	}
}
