package calculate_cancellation_fee

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ComputeFee решает, начисляется ли плата за отмену бронирования в момент now.
// nil означает, что плата не начисляется. loc часовой пояс бизнеса.
//
// Порядок правил:
//  1. бизнес явно отказался от платы (chargeFee = no): nil, независимо от остальных настроек
//  2. правило бизнеса перекрывает категории: правило бизнеса
//  3. у категории услуги есть включенное правило: правило категории
//  4. бизнес явно взимает плату (chargeFee = yes): правило бизнеса
//  5. иначе nil
func ComputeFee(
	booking *domain.Booking,
	business domain.CancellationPolicy,
	category *domain.CategoryCancellationPolicy,
	loc *time.Location,
	now time.Time,
) (*domain.Fee, error) {
	if business.ChargeFee == domain.ChargeFeeNo {
		return nil, nil
	}

	if business.OverrideServiceCategory {
		return evaluate(business.Rule, booking, loc, now)
	}

	if category != nil && category.Enabled {
		return evaluate(category.Rule, booking, loc, now)
	}

	if business.ChargeFee == domain.ChargeFeeYes {
		return evaluate(business.Rule, booking, loc, now)
	}

	return nil, nil
}

// evaluate применяет правило времени и суммы к бронированию
func evaluate(rule domain.FeeRule, booking *domain.Booking, loc *time.Location, now time.Time) (*domain.Fee, error) {
	if loc == nil {
		loc = time.UTC
	}

	start, err := booking.StartAt(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidInput, booking.ID, err)
	}

	// отмена в день визита бесплатна
	if rule.ExcludeSameDay && types.SameDate(now.In(loc), start) {
		return nil, nil
	}

	applies, err := timingApplies(rule.Timing, start, loc, now)
	if err != nil || !applies {
		return nil, err
	}

	return amountOf(rule.Amount), nil
}

// timingApplies проверяет, наступил ли момент, с которого отмена платная
func timingApplies(timing domain.FeeTiming, start time.Time, loc *time.Location, now time.Time) (bool, error) {
	switch t := timing.(type) {
	case domain.HoursBefore:
		threshold := start.Add(-time.Duration(t.Hours) * time.Hour)
		return !now.Before(threshold), nil

	case domain.DayBeforeCutoff:
		dayBefore := types.DateOnly(start).AddDate(0, 0, -1)
		cutoff, err := types.AtTimeOfDay(dayBefore, t.At, loc)
		if err != nil {
			return false, fmt.Errorf("%w: cutoff time: %v", ErrInvalidInput, err)
		}
		return !now.Before(cutoff), nil

	default:
		// правило не настроено
		return false, nil
	}
}

// amountOf возвращает сумму платы; некорректная сумма означает отсутствие платы
func amountOf(amount domain.FeeAmount) *domain.Fee {
	var money domain.Money

	switch a := amount.(type) {
	case domain.SingleFee:
		money = a.Fee
	case domain.MultipleFees:
		// всегда берется первая ступень
		if len(a.Tiers) == 0 {
			return nil
		}
		money = a.Tiers[0]
	default:
		return nil
	}

	value, ok := money.Value()
	if !ok {
		return nil
	}
	return &domain.Fee{Amount: value, Currency: money.Currency}
}
