package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2026-02-09 is a Monday
const monday = "2026-02-09"

func recurringRow(providerID int64, weekday int, start, end string) domain.ProviderAvailability {
	return domain.ProviderAvailability{
		BusinessID:  1,
		ProviderID:  ptr.Ptr(providerID),
		DayOfWeek:   weekday,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		IsAvailable: true,
	}
}

func overrideRow(providerID int64, date, start, end string) domain.ProviderAvailability {
	d, _ := types.ParseDate(date)
	row := recurringRow(providerID, 0, start, end)
	row.EffectiveDate = &d
	return row
}

func providerPolicy() domain.SchedulingPolicy {
	return domain.DefaultSchedulingPolicy()
}

func TestResolveSlots_HolidayGate(t *testing.T) {
	holiday := domain.Holiday{BusinessID: 1, Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), Name: "Closed"}
	rows := []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "17:00")}

	for _, who := range []domain.HolidayBlockedWho{domain.HolidayBlockedCustomer, domain.HolidayBlockedBoth} {
		policy := providerPolicy()
		policy.HolidayBlockedWho = who
		policy.SpotsBasedOnProviderAvailability = false

		res, err := ResolveSlots(ResolveInput{BusinessID: 1, Date: monday, Policy: policy, Holidays: []domain.Holiday{holiday}, Rows: rows})
		require.NoError(t, err)
		assert.Equal(t, domain.SlotSourceHoliday, res.Source, "who=%s", who)
		assert.Empty(t, res.Slots)
		assert.Equal(t, []string{}, res.Display())
	}

	// выходной только для провайдеров не закрывает запись клиентам
	policy := providerPolicy()
	policy.HolidayBlockedWho = domain.HolidayBlockedProvider
	res, err := ResolveSlots(ResolveInput{BusinessID: 1, Date: monday, Policy: policy, Holidays: []domain.Holiday{holiday}, Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceProviderAvailability, res.Source)
	assert.Len(t, res.Slots, 16)
}

func TestResolveSlots_HolidayOnAnotherDate(t *testing.T) {
	policy := providerPolicy()
	policy.HolidayBlockedWho = domain.HolidayBlockedBoth
	holiday := domain.Holiday{Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: policy, Holidays: []domain.Holiday{holiday}})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceNoCoverage, res.Source)
}

func TestResolveSlots_CapacityGate(t *testing.T) {
	policy := providerPolicy()
	policy.SpotLimitsEnabled = true
	policy.MaxBookingsPerDay = 5
	rows := []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "17:00")}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: policy, Rows: rows, ExistingBookings: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceCapacity, res.Source)
	assert.Empty(t, res.Slots)

	res, err = ResolveSlots(ResolveInput{Date: monday, Policy: policy, Rows: rows, ExistingBookings: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceProviderAvailability, res.Source)
	assert.NotEmpty(t, res.Slots)

	// лимит выключен
	policy.SpotLimitsEnabled = false
	res, err = ResolveSlots(ResolveInput{Date: monday, Policy: policy, Rows: rows, ExistingBookings: 50})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Slots)
}

func TestResolveSlots_OverrideReplacesRecurring(t *testing.T) {
	rows := []domain.ProviderAvailability{
		recurringRow(1, 1, "09:00", "17:00"),
		overrideRow(1, monday, "10:00", "12:00"),
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceProviderAvailability, res.Source)
	assert.Equal(t, []string{"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}, res.Display())
	assert.Equal(t, domain.TimeSlot{Start: "11:30", End: "12:00"}, res.Slots[3])
}

func TestResolveSlots_OverrideIsPerProvider(t *testing.T) {
	rows := []domain.ProviderAvailability{
		recurringRow(1, 1, "09:00", "17:00"),
		overrideRow(1, monday, "10:00", "12:00"),
		recurringRow(2, 1, "13:00", "14:00"),
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	display := res.Display()
	require.Len(t, display, 8)
	assert.Equal(t, "10:00 AM", display[0])
	assert.Equal(t, "1:30 PM", display[len(display)-1])
}

func TestResolveSlots_OverrideForAnotherDateIgnored(t *testing.T) {
	rows := []domain.ProviderAvailability{
		recurringRow(1, 1, "09:00", "11:00"),
		overrideRow(1, "2026-02-16", "15:00", "16:00"),
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM"}, res.Display())
}

func TestResolveSlots_EnvelopeSpansGaps(t *testing.T) {
	rows := []domain.ProviderAvailability{
		recurringRow(1, 1, "09:00", "10:00"),
		recurringRow(1, 1, "14:00:00", "15:00:00"),
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)

	display := res.Display()
	assert.Len(t, display, 12)
	assert.Equal(t, "9:00 AM", display[0])
	assert.Equal(t, "2:30 PM", display[len(display)-1])
	assert.Contains(t, display, "12:30 PM")
}

func TestResolveSlots_LastSlotEndsAtEnvelope(t *testing.T) {
	rows := []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "10:15")}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "09:30", End: "10:00"},
		{Start: "10:00", End: "10:15"},
	}, res.Slots)
}

func TestResolveSlots_Fallbacks(t *testing.T) {
	// нет ни одной подходящей строки: почасовые слоты
	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy()})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceNoCoverage, res.Source)
	display := res.Display()
	require.Len(t, display, 13)
	assert.Equal(t, "7:00 AM", display[0])
	assert.Equal(t, "8:00 AM", display[1])
	assert.Equal(t, "7:00 PM", display[12])

	// привязка к расписаниям выключена: слоты каждые полчаса
	policy := providerPolicy()
	policy.SpotsBasedOnProviderAvailability = false
	rows := []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "10:00")}
	res, err = ResolveSlots(ResolveInput{Date: monday, Policy: policy, Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourcePolicyBypass, res.Source)
	display = res.Display()
	require.Len(t, display, 26)
	assert.Equal(t, "7:00 AM", display[0])
	assert.Equal(t, "7:30 AM", display[1])
	assert.Equal(t, "7:30 PM", display[25])
}

func TestResolveSlots_RowFiltering(t *testing.T) {
	unavailable := recurringRow(1, 1, "06:00", "22:00")
	unavailable.IsAvailable = false

	rows := []domain.ProviderAvailability{
		unavailable,
		recurringRow(2, 2, "08:00", "09:00"), // вторник
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotSourceNoCoverage, res.Source)
}

func TestResolveSlots_AnyProviderRows(t *testing.T) {
	anyProvider := recurringRow(0, 1, "12:00", "13:00")
	anyProvider.ProviderID = nil

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: []domain.ProviderAvailability{anyProvider}})
	require.NoError(t, err)
	assert.Equal(t, []string{"12:00 PM", "12:30 PM"}, res.Display())
}

func TestResolveSlots_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		date string
		rows []domain.ProviderAvailability
	}{
		{name: "malformed date", date: "2026-13-01"},
		{name: "empty date", date: ""},
		{name: "malformed start", date: monday, rows: []domain.ProviderAvailability{recurringRow(1, 1, "9am", "17:00")}},
		{name: "malformed end", date: monday, rows: []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "25:00")}},
		{name: "start after end", date: monday, rows: []domain.ProviderAvailability{recurringRow(1, 1, "17:00", "09:00")}},
		{name: "empty interval", date: monday, rows: []domain.ProviderAvailability{recurringRow(1, 1, "09:00", "09:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSlots(ResolveInput{Date: tt.date, Policy: providerPolicy(), Rows: tt.rows})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestResolveSlots_MalformedRowOnAnotherDayIgnored(t *testing.T) {
	rows := []domain.ProviderAvailability{
		recurringRow(1, 3, "garbage", "17:00"),
		recurringRow(1, 1, "09:00", "10:00"),
	}

	res, err := ResolveSlots(ResolveInput{Date: monday, Policy: providerPolicy(), Rows: rows})
	require.NoError(t, err)
	assert.Len(t, res.Slots, 2)
}

func TestResolveSlots_Deterministic(t *testing.T) {
	in := ResolveInput{
		Date:   monday,
		Policy: providerPolicy(),
		Rows: []domain.ProviderAvailability{
			recurringRow(3, 1, "15:00", "16:00"),
			recurringRow(1, 1, "09:00", "10:00"),
			overrideRow(2, monday, "11:00", "12:00"),
		},
	}

	first, err := ResolveSlots(in)
	require.NoError(t, err)
	second, err := ResolveSlots(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
