package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// SlotSource names the rule that produced a slot list
type SlotSource string

const (
	SlotSourceHoliday              SlotSource = "holiday"
	SlotSourceCapacity             SlotSource = "capacity"
	SlotSourcePolicyBypass         SlotSource = "policy_bypass"
	SlotSourceProviderAvailability SlotSource = "provider_availability"
	SlotSourceNoCoverage           SlotSource = "no_coverage"
)

// TimeSlot is a bookable interval [Start, End) within a day
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Display returns the 12-hour start time shown to customers ("9:30 AM")
func (s TimeSlot) Display() string {
	return s.Start.Format12h()
}

// DurationMinutes returns the slot length in minutes, 0 for malformed bounds
func (s TimeSlot) DurationMinutes() int {
	start, errStart := s.Start.Minutes()
	end, errEnd := s.End.Minutes()
	if errStart != nil || errEnd != nil || end < start {
		return 0
	}
	return end - start
}
