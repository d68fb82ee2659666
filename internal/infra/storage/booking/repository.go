package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// bookingDateExpr дата визита с учетом старых строк, где дата хранится текстом
const bookingDateExpr = "COALESCE(scheduled_date, NULLIF(LEFT(date, 10), '')::date)"

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование бизнеса по ID
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"customer_id",
		"provider_id",
		"service_id",
		"service_category_id",
		"scheduled_date",
		"scheduled_time",
		"date",
		"time",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.BusinessID,
		&booking.CustomerID,
		&booking.ProviderID,
		&booking.ServiceID,
		&booking.ServiceCategoryID,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.LegacyDate,
		&booking.LegacyTime,
		&booking.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &booking, nil
}

// CountActiveByDate считает бронирования на дату, кроме отмененных и пропущенных
func (r *Repository) CountActiveByDate(ctx context.Context, businessID int64, date time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Expr(bookingDateExpr+" = ?", types.FormatDate(date))).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountActiveByDateRange считает активные бронирования по датам диапазона [from, to].
// Ключ результата: дата в формате YYYY-MM-DD; даты без бронирований отсутствуют.
func (r *Repository) CountActiveByDateRange(ctx context.Context, businessID int64, from, to time.Time) (map[string]int, error) {
	query, args, err := psqlbuilder.Select(bookingDateExpr+" AS day", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Expr(bookingDateExpr+" BETWEEN ? AND ?", types.FormatDate(from), types.FormatDate(to))).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		GroupBy("day").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			day   time.Time
			count int
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActiveByDateRange - scan row: %v", ErrScanRow, err)
		}
		counts[types.FormatDate(day)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActiveByDateRange - rows iteration: %v", ErrScanRow, err)
	}

	return counts, nil
}

func inactiveStatuses() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
