package get_available_slots

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string   `json:"date"`
	BusinessID int64    `json:"businessId"`
	Source     string   `json:"source"`
	Slots      []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.Display()
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(types.DateLayout),
		BusinessID: resp.BusinessID,
		Source:     string(resp.Source),
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(businessID int64, date string, providerID *int64) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		BusinessID: businessID,
		Date:       date,
		ProviderID: providerID,
	}
}
