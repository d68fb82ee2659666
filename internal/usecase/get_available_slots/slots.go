package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ResolveInput все данные, необходимые для расчета слотов на одну дату
type ResolveInput struct {
	BusinessID       int64
	Date             string // YYYY-MM-DD
	Policy           domain.SchedulingPolicy
	Holidays         []domain.Holiday
	Rows             []domain.ProviderAvailability
	ExistingBookings int // активные бронирования на эту дату
}

// Resolution результат расчета слотов
type Resolution struct {
	Date   time.Time
	Source domain.SlotSource
	Slots  []domain.TimeSlot
}

// Display возвращает слоты в 12-часовом формате ("9:00 AM", "9:30 AM", ...)
func (r *Resolution) Display() []string {
	out := make([]string, len(r.Slots))
	for i, slot := range r.Slots {
		out[i] = slot.Display()
	}
	return out
}

// ResolveSlots вычисляет список бронируемых слотов на дату.
// Правила применяются строго по порядку: праздник, дневной лимит, отключенная
// привязка к расписаниям, расписания провайдеров, запасной диапазон.
// Пустой список слотов не является ошибкой.
func ResolveSlots(in ResolveInput) (*Resolution, error) {
	date, err := types.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	res := &Resolution{Date: date, Slots: []domain.TimeSlot{}}

	// 1. Праздник закрывает запись для клиентов
	if in.Policy.BlocksCustomersOnHolidays() && isHoliday(in.Holidays, date) {
		res.Source = domain.SlotSourceHoliday
		return res, nil
	}

	// 2. Дневной лимит бронирований исчерпан
	if in.Policy.CapacityReached(in.ExistingBookings) {
		res.Source = domain.SlotSourceCapacity
		return res, nil
	}

	// 3. Запись не зависит от расписаний провайдеров
	if !in.Policy.SpotsBasedOnProviderAvailability {
		res.Source = domain.SlotSourcePolicyBypass
		res.Slots = stepSlots(domain.GenericWindowStartMinutes, domain.GenericWindowEndMinutes, domain.PolicyBypassStepMinutes)
		return res, nil
	}

	// 4-5. Отбор строк расписания на этот день недели
	rows := selectRows(in.Rows, date)
	if len(rows) == 0 {
		// 8. Ни один провайдер не работает в этот день
		res.Source = domain.SlotSourceNoCoverage
		res.Slots = stepSlots(domain.GenericWindowStartMinutes, domain.GenericWindowEndMinutes, domain.NoCoverageStepMinutes)
		return res, nil
	}

	// 6. Общая огибающая всех интервалов
	earliest, latest, err := envelope(rows)
	if err != nil {
		return nil, err
	}

	// 7. Слоты с шагом 30 минут внутри огибающей
	res.Source = domain.SlotSourceProviderAvailability
	res.Slots = make([]domain.TimeSlot, 0, (latest-earliest)/domain.SlotStepMinutes+1)
	for current := earliest; current < latest; current += domain.SlotStepMinutes {
		res.Slots = append(res.Slots, slotAt(current, min(current+domain.SlotStepMinutes, latest)))
	}

	return res, nil
}

// selectRows отбирает доступные строки на день недели даты.
// Для каждого провайдера строки на конкретную дату заменяют его еженедельные строки.
func selectRows(rows []domain.ProviderAvailability, date time.Time) []domain.ProviderAvailability {
	weekday := types.Weekday(date)

	overrides := make(map[int64][]domain.ProviderAvailability)
	recurring := make(map[int64][]domain.ProviderAvailability)
	var order []int64

	for _, row := range rows {
		if !row.IsAvailable || row.Weekday() != weekday {
			continue
		}

		key := row.ProviderKey()
		switch {
		case row.AppliesOn(date):
			overrides[key] = append(overrides[key], row)
		case row.IsRecurring():
			recurring[key] = append(recurring[key], row)
		default:
			// строка на другую дату с тем же днем недели
			continue
		}

		if len(overrides[key])+len(recurring[key]) == 1 {
			order = append(order, key)
		}
	}

	selected := make([]domain.ProviderAvailability, 0, len(rows))
	for _, key := range order {
		if len(overrides[key]) > 0 {
			selected = append(selected, overrides[key]...)
		} else {
			selected = append(selected, recurring[key]...)
		}
	}
	return selected
}

// envelope возвращает минимальное начало и максимальный конец (в минутах)
func envelope(rows []domain.ProviderAvailability) (int, int, error) {
	earliest, latest := types.MinutesPerDay, 0

	for _, row := range rows {
		start, err := row.StartTime.Minutes()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: availability id=%d start time: %v", ErrInvalidInput, row.ID, err)
		}
		end, err := row.EndTime.Minutes()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: availability id=%d end time: %v", ErrInvalidInput, row.ID, err)
		}
		if start >= end {
			return 0, 0, fmt.Errorf("%w: availability id=%d: start %s is not before end %s",
				ErrInvalidInput, row.ID, row.StartTime, row.EndTime)
		}

		earliest = min(earliest, start)
		latest = max(latest, end)
	}

	return earliest, latest, nil
}

// stepSlots генерирует слоты длиной step, целиком лежащие в [from, to)
func stepSlots(from, to, step int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, (to-from)/step)
	for current := from; current+step <= to; current += step {
		slots = append(slots, slotAt(current, current+step))
	}
	return slots
}

func slotAt(startMinutes, endMinutes int) domain.TimeSlot {
	// границы уже проверены и лежат в пределах суток
	start, _ := types.NewTimeStringFromMinutes(startMinutes)
	end, _ := types.NewTimeStringFromMinutes(endMinutes)
	return domain.TimeSlot{Start: start, End: end}
}

func isHoliday(holidays []domain.Holiday, date time.Time) bool {
	for _, h := range holidays {
		if types.SameDate(h.Date, date) {
			return true
		}
	}
	return false
}
