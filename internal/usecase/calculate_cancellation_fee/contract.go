package calculate_cancellation_fee

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, businessID, bookingID int64) (*domain.Booking, error)
}

// CategoryPolicyProvider источник правил отмены по категориям услуг; отсутствие правила: category_policy.ErrPolicyNotFound
type CategoryPolicyProvider interface {
	GetByCategory(ctx context.Context, businessID, categoryID int64) (*domain.CategoryCancellationPolicy, error)
}

// SettingsProvider источник настроек бизнеса
type SettingsProvider interface {
	Get(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// Metrics интерфейс для доменных метрик
type Metrics interface {
	IncCancellationFee(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
