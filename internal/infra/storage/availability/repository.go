package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Repository репозиторий расписаний провайдеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForDate возвращает еженедельные строки на день недели даты и строки, действующие только в эту дату.
// Если providerID задан, возвращаются только строки этого провайдера.
func (r *Repository) ListForDate(ctx context.Context, businessID int64, date time.Time, providerID *int64) ([]domain.ProviderAvailability, error) {
	scope := squirrel.Or{
		squirrel.And{
			squirrel.Eq{"effective_date": nil},
			squirrel.Eq{"day_of_week": types.Weekday(date)},
		},
		squirrel.Eq{"effective_date": types.FormatDate(date)},
	}

	rows, err := r.list(ctx, businessID, scope, providerID)
	if err != nil {
		return nil, fmt.Errorf("ListForDate: %w", err)
	}
	return rows, nil
}

// ListForRange возвращает все еженедельные строки и строки на даты внутри [from, to]
func (r *Repository) ListForRange(ctx context.Context, businessID int64, from, to time.Time, providerID *int64) ([]domain.ProviderAvailability, error) {
	scope := squirrel.Or{
		squirrel.Eq{"effective_date": nil},
		squirrel.Expr("effective_date BETWEEN ? AND ?", types.FormatDate(from), types.FormatDate(to)),
	}

	rows, err := r.list(ctx, businessID, scope, providerID)
	if err != nil {
		return nil, fmt.Errorf("ListForRange: %w", err)
	}
	return rows, nil
}

func (r *Repository) list(ctx context.Context, businessID int64, scope squirrel.Sqlizer, providerID *int64) ([]domain.ProviderAvailability, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"business_id",
		"provider_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"effective_date",
	).
		From("provider_availability").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(scope)

	if providerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *providerID})
	}

	query, args, err := selectBuilder.OrderBy("provider_id", "start_time", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.ProviderAvailability, 0)
	for rows.Next() {
		var (
			row           domain.ProviderAvailability
			effectiveDate sql.NullTime
		)

		if err := rows.Scan(
			&row.ID,
			&row.BusinessID,
			&row.ProviderID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.IsAvailable,
			&effectiveDate,
		); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrScanRow, err)
		}

		if effectiveDate.Valid {
			d := types.DateOnly(effectiveDate.Time)
			row.EffectiveDate = &d
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
