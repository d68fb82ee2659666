package settings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	categoryPolicyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/category_policy"
)

// SettingsRepository источник хранимых настроек бизнеса (репозиторий или кэш поверх него)
type SettingsRepository interface {
	GetByBusiness(ctx context.Context, businessID int64) (*domain.BusinessSettingsRecord, error)
}

// CategoryPolicyRepository интерфейс репозитория правил отмены по категориям
type CategoryPolicyRepository interface {
	GetByCategory(ctx context.Context, businessID, categoryID int64) (*categoryPolicyRepo.Row, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
