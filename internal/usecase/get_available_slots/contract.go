package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SettingsProvider источник настроек бизнеса
type SettingsProvider interface {
	// Get возвращает настройки бизнеса; для бизнеса без сохраненных настроек возвращаются значения по умолчанию
	Get(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// AvailabilityRepository интерфейс репозитория расписаний провайдеров
type AvailabilityRepository interface {
	// ListForDate возвращает еженедельные строки и строки на конкретную дату; providerID сужает выборку до одного провайдера
	ListForDate(ctx context.Context, businessID int64, date time.Time, providerID *int64) ([]domain.ProviderAvailability, error)
}

// HolidayRepository интерфейс репозитория праздников
type HolidayRepository interface {
	ListInRange(ctx context.Context, businessID int64, from, to time.Time) ([]domain.Holiday, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountActiveByDate считает бронирования на дату, занимающие место в дневном лимите
	CountActiveByDate(ctx context.Context, businessID int64, date time.Time) (int, error)
}

// Metrics интерфейс для доменных метрик
type Metrics interface {
	IncSlotsResolved(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
