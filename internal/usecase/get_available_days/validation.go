package get_available_days

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует запрос и возвращает границы диапазона
func validateRequest(req *Request, maxDays int) (time.Time, time.Time, error) {
	if req.BusinessID <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ProviderID != nil && *req.ProviderID <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	from, err := types.ParseDate(req.From)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}

	to, err := types.ParseDate(req.To)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	if days := int(to.Sub(from).Hours()/24) + 1; days > maxDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days requested, at most %d allowed",
			ErrRangeTooLong, days, maxDays)
	}

	return from, to, nil
}
