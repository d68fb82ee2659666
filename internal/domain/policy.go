package domain

// HolidayBlockedWho tells which party a business holiday closes booking for
type HolidayBlockedWho string

const (
	HolidayBlockedCustomer HolidayBlockedWho = "customer"
	HolidayBlockedProvider HolidayBlockedWho = "provider"
	HolidayBlockedBoth     HolidayBlockedWho = "both"
	HolidayBlockedNone     HolidayBlockedWho = ""
)

// SchedulingPolicy is the business-wide policy applied when resolving bookable slots
type SchedulingPolicy struct {
	HolidayBlockedWho HolidayBlockedWho

	SpotLimitsEnabled bool
	MaxBookingsPerDay int

	// SpotsBasedOnProviderAvailability false means booking is not gated on provider
	// schedules and a generic daytime range is offered instead
	SpotsBasedOnProviderAvailability bool
}

// DefaultSchedulingPolicy returns the policy used when a business has none stored
func DefaultSchedulingPolicy() SchedulingPolicy {
	return SchedulingPolicy{
		HolidayBlockedWho:                HolidayBlockedNone,
		SpotsBasedOnProviderAvailability: true,
	}
}

// BlocksCustomersOnHolidays returns true if holidays close customer-facing booking
func (p SchedulingPolicy) BlocksCustomersOnHolidays() bool {
	return p.HolidayBlockedWho == HolidayBlockedCustomer || p.HolidayBlockedWho == HolidayBlockedBoth
}

// CapacityReached returns true if the daily booking cap is enabled and already met
func (p SchedulingPolicy) CapacityReached(existingBookings int) bool {
	return p.SpotLimitsEnabled && p.MaxBookingsPerDay > 0 && existingBookings >= p.MaxBookingsPerDay
}
