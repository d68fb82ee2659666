package get_available_days

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SettingsProvider источник настроек бизнеса
type SettingsProvider interface {
	Get(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// AvailabilityRepository интерфейс репозитория расписаний провайдеров
type AvailabilityRepository interface {
	// ListForRange возвращает еженедельные строки и строки на даты внутри [from, to]
	ListForRange(ctx context.Context, businessID int64, from, to time.Time, providerID *int64) ([]domain.ProviderAvailability, error)
}

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	ListInRange(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Holiday, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountActiveByDateRange возвращает количество активных бронирований по датам (ключ YYYY-MM-DD)
	CountActiveByDateRange(ctx context.Context, businessID int64, from, to time.Time) (map[string]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
