package settings

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Repository источник настроек, поверх которого работает кэш
type Repository interface {
	GetByBusiness(ctx context.Context, businessID int64) (*domain.BusinessSettingsRecord, error)
}

// Metrics интерфейс для метрик кэша
type Metrics interface {
	IncCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
