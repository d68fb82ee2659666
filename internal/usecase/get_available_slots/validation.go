package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	if req.BusinessID <= 0 {
		return time.Time{}, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ProviderID != nil && *req.ProviderID <= 0 {
		return time.Time{}, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}
