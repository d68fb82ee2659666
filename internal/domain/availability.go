package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ProviderAvailability is one open interval of a provider's schedule.
// A nil EffectiveDate means the row recurs every week on DayOfWeek; a non-nil
// EffectiveDate means the row applies to that calendar date only and replaces
// the provider's recurring rows for that day.
type ProviderAvailability struct {
	ID            int64
	BusinessID    int64
	ProviderID    *int64 // nil = любой провайдер бизнеса
	DayOfWeek     int    // 0 = воскресенье ... 6 = суббота
	StartTime     types.TimeString
	EndTime       types.TimeString // не включительно
	IsAvailable   bool
	EffectiveDate *time.Time
}

// Weekday returns the day of week the row applies to, derived from EffectiveDate when set
func (a *ProviderAvailability) Weekday() int {
	if a.EffectiveDate != nil {
		return types.Weekday(*a.EffectiveDate)
	}
	return a.DayOfWeek
}

// IsRecurring returns true if the row repeats every week
func (a *ProviderAvailability) IsRecurring() bool {
	return a.EffectiveDate == nil
}

// AppliesOn returns true if the row is a date-specific override for date
func (a *ProviderAvailability) AppliesOn(date time.Time) bool {
	return a.EffectiveDate != nil && types.SameDate(*a.EffectiveDate, date)
}

// ProviderKey groups rows of the same provider; rows without a provider share key 0
func (a *ProviderAvailability) ProviderKey() int64 {
	if a.ProviderID == nil {
		return 0
	}
	return *a.ProviderID
}

// Holiday is a calendar date on which the business is closed
type Holiday struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	Name       string
}
