package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных: дате, времени в расписании, идентификаторах
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
