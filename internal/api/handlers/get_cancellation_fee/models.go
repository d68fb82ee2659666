package get_cancellation_fee

import (
	"time"

	calculateFee "github.com/m04kA/SMC-SchedulingService/internal/usecase/calculate_cancellation_fee"
)

// CancellationFeeResponse HTTP response model
type CancellationFeeResponse struct {
	BookingID   int64    `json:"bookingId"`
	FeeApplies  bool     `json:"feeApplies"`
	Amount      *float64 `json:"amount,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	PayProvider bool     `json:"payProvider"`
	EvaluatedAt string   `json:"evaluatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateFee.Response) *CancellationFeeResponse {
	out := &CancellationFeeResponse{
		BookingID:   resp.BookingID,
		PayProvider: resp.PayProvider,
		EvaluatedAt: resp.EvaluatedAt.Format(time.RFC3339),
	}

	if resp.Fee != nil {
		amount := resp.Fee.Amount
		currency := resp.Fee.Currency
		out.FeeApplies = true
		out.Amount = &amount
		out.Currency = &currency
	}

	return out
}
