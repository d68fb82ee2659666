package domain

// Slot generation constants
const (
	// SlotStepMinutes шаг генерации слотов по расписанию провайдеров
	SlotStepMinutes = 30

	// GenericWindowStartMinutes начало типового окна (07:00), используемого без расписаний провайдеров
	GenericWindowStartMinutes = 7 * 60

	// GenericWindowEndMinutes конец типового окна (20:00, не включительно)
	GenericWindowEndMinutes = 20 * 60

	// PolicyBypassStepMinutes шаг слотов, когда бронирование не зависит от расписаний провайдеров
	PolicyBypassStepMinutes = 30

	// NoCoverageStepMinutes шаг слотов, когда в этот день не работает ни один провайдер
	NoCoverageStepMinutes = 60
)

// Request limits
const (
	// MaxAvailableDaysRange максимальная длина диапазона для календаря доступных дней
	MaxAvailableDaysRange = 62
)

// DefaultTimezone используется, когда у бизнеса не задан часовой пояс
const DefaultTimezone = "UTC"

// InactiveStatuses статусы бронирований, не занимающих место в дневном лимите
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
