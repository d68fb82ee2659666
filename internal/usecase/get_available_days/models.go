package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса календаря доступных дней
type Request struct {
	BusinessID int64
	From       string // YYYY-MM-DD, включительно
	To         string // YYYY-MM-DD, включительно
	ProviderID *int64
}

// Response модель ответа
type Response struct {
	BusinessID int64
	Days       []Day
}

// Day доступность одной даты
type Day struct {
	Date      time.Time
	Source    domain.SlotSource
	SlotCount int
}

// Available returns true if at least one slot can be booked on the day
func (d Day) Available() bool {
	return d.SlotCount > 0
}
