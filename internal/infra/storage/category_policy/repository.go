package category_policy

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий правил отмены по категориям услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCategory возвращает правило отмены категории услуги бизнеса
func (r *Repository) GetByCategory(ctx context.Context, businessID, categoryID int64) (*Row, error) {
	query, args, err := psqlbuilder.Select("id", "business_id", "service_category_id", "policy").
		From("service_category_cancellation_policies").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Eq{"service_category_id": categoryID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCategory - build select query: %v", ErrBuildQuery, err)
	}

	var (
		row    Row
		policy []byte
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&row.ID, &row.BusinessID, &row.ServiceCategoryID, &policy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCategory - scan policy: %v", ErrScanRow, err)
	}

	// NULL документ означает выключенное правило
	if len(policy) > 0 {
		if err := json.Unmarshal(policy, &row.Policy); err != nil {
			return nil, fmt.Errorf("%w: GetByCategory - category=%d: %v", ErrDecodePolicy, categoryID, err)
		}
	}

	return &row, nil
}
