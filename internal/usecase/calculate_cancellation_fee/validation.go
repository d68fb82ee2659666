package calculate_cancellation_fee

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateCancellable проверяет, что бронирование еще можно отменить
func validateCancellable(booking *domain.Booking) error {
	if !booking.IsActive() || booking.Status == domain.StatusCompleted {
		return fmt.Errorf("%w: status %s", ErrBookingNotCancellable, booking.Status)
	}
	return nil
}
