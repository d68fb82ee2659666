package settings

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusiness читает часовой пояс и JSON документы политик бизнеса.
// Документы возвращаются в хранимом виде, преобразование в доменные типы выполняет вызывающий код.
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) (*domain.BusinessSettingsRecord, error) {
	query, args, err := psqlbuilder.Select(
		"business_id",
		"timezone",
		"scheduling_policy",
		"cancellation_policy",
	).
		From("business_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	var (
		record       domain.BusinessSettingsRecord
		timezone     sql.NullString
		scheduling   []byte
		cancellation []byte
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.BusinessID, &timezone, &scheduling, &cancellation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusiness - scan settings: %v", ErrScanRow, err)
	}

	record.Timezone = timezone.String

	if isJSONDocument(scheduling) {
		record.Scheduling = &domain.SchedulingPolicyRecord{}
		if err := json.Unmarshal(scheduling, record.Scheduling); err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - scheduling_policy of business=%d: %v", ErrDecodePolicy, businessID, err)
		}
	}

	if isJSONDocument(cancellation) {
		record.Cancellation = &domain.CancellationPolicyRecord{}
		if err := json.Unmarshal(cancellation, record.Cancellation); err != nil {
			return nil, fmt.Errorf("%w: GetByBusiness - cancellation_policy of business=%d: %v", ErrDecodePolicy, businessID, err)
		}
	}

	return &record, nil
}

// isJSONDocument отбрасывает NULL колонки и JSON null
func isJSONDocument(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
