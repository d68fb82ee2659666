package calculate_cancellation_fee

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных или дате/времени бронирования
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingNotCancellable возвращается для отмененных, завершенных и пропущенных бронирований
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
