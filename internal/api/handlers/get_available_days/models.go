package get_available_days

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	BusinessID int64          `json:"businessId"`
	Days       []AvailableDay `json:"days"`
}

// AvailableDay доступность одной даты календаря
type AvailableDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	SlotCount int    `json:"slotCount"`
	Source    string `json:"source"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = AvailableDay{
			Date:      day.Date.Format(types.DateLayout),
			Available: day.Available(),
			SlotCount: day.SlotCount,
			Source:    string(day.Source),
		}
	}

	return &AvailableDaysResponse{
		BusinessID: resp.BusinessID,
		Days:       days,
	}
}
