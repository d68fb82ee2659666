package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking holds the fields of an appointment needed for scheduling decisions.
// Older rows carry the appointment in the legacy Date/Time text columns.
type Booking struct {
	ID                int64
	BusinessID        int64
	CustomerID        int64
	ProviderID        *int64
	ServiceID         int64
	ServiceCategoryID *int64
	ScheduledDate     *time.Time
	ScheduledTime     *types.TimeString
	LegacyDate        *string
	LegacyTime        *string
	Status            BookingStatus
}

// IsActive returns true if the booking still occupies a spot
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// Date returns the calendar date of the appointment, falling back to the legacy column
func (b *Booking) Date() (time.Time, error) {
	if b.ScheduledDate != nil {
		return types.DateOnly(*b.ScheduledDate), nil
	}
	if b.LegacyDate != nil && strings.TrimSpace(*b.LegacyDate) != "" {
		return parseLegacyDate(*b.LegacyDate)
	}
	return time.Time{}, fmt.Errorf("%w: booking %d has no date", types.ErrInvalidDate, b.ID)
}

// TimeOfDay returns the appointment start time; ok is false when no time is stored
func (b *Booking) TimeOfDay() (types.TimeString, bool, error) {
	if b.ScheduledTime != nil && *b.ScheduledTime != "" {
		if err := b.ScheduledTime.Validate(); err != nil {
			return "", false, err
		}
		return *b.ScheduledTime, true, nil
	}
	if b.LegacyTime != nil && strings.TrimSpace(*b.LegacyTime) != "" {
		ts, err := types.NewTimeStringFromString(*b.LegacyTime)
		if err != nil {
			return "", false, err
		}
		return ts, true, nil
	}
	return "", false, nil
}

// StartAt returns the appointment start as an instant in loc.
// Without a stored time the appointment starts at the beginning of its day.
func (b *Booking) StartAt(loc *time.Location) (time.Time, error) {
	date, err := b.Date()
	if err != nil {
		return time.Time{}, err
	}

	tod, ok, err := b.TimeOfDay()
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		tod = "00:00"
	}

	return types.AtTimeOfDay(date, tod, loc)
}

// parseLegacyDate принимает "YYYY-MM-DD" и временные метки, начинающиеся с даты
func parseLegacyDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(types.DateLayout) && (s[len(types.DateLayout)] == 'T' || s[len(types.DateLayout)] == ' ') {
		s = s[:len(types.DateLayout)]
	}
	return types.ParseDate(s)
}
