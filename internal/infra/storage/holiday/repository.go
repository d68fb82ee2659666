package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Repository репозиторий праздничных дней бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListInRange возвращает праздники бизнеса в диапазоне [from, to], отсортированные по дате
func (r *Repository) ListInRange(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Holiday, error) {
	query, args, err := psqlbuilder.Select("id", "business_id", "date", "name").
		From("business_holidays").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.GtOrEq{"date": types.FormatDate(from)}).
		Where(squirrel.LtOrEq{"date": types.FormatDate(to)}).
		OrderBy("date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.BusinessID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan row: %v", ErrScanRow, err)
		}
		h.Date = types.DateOnly(h.Date)
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows iteration: %v", ErrScanRow, err)
	}

	return holidays, nil
}
