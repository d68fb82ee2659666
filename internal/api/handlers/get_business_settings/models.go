package get_business_settings

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Режимы начисления платы в ответе
const (
	timingNone            = "none"
	timingHoursBefore     = "hours_before"
	timingDayBeforeCutoff = "day_before_cutoff"
)

// SettingsResponse действующие настройки бизнеса после применения значений по умолчанию
type SettingsResponse struct {
	BusinessID   int64                `json:"businessId"`
	Timezone     string               `json:"timezone"`
	Scheduling   SchedulingResponse   `json:"scheduling"`
	Cancellation CancellationResponse `json:"cancellation"`
}

// SchedulingResponse политика расписания
type SchedulingResponse struct {
	HolidayBlockedWho                string `json:"holidayBlockedWho"`
	SpotLimitsEnabled                bool   `json:"spotLimitsEnabled"`
	MaxBookingsPerDay                int    `json:"maxBookingsPerDay"`
	SpotsBasedOnProviderAvailability bool   `json:"spotsBasedOnProviderAvailability"`
}

// CancellationResponse политика платы за отмену
type CancellationResponse struct {
	ChargeFee               string        `json:"chargeFee,omitempty"`
	PayProvider             bool          `json:"payProvider"`
	OverrideServiceCategory bool          `json:"overrideServiceCategory"`
	Timing                  string        `json:"timing"`
	HoursBefore             *int          `json:"hoursBefore,omitempty"`
	CutoffTime              *string       `json:"cutoffTime,omitempty"`
	ExcludeSameDay          bool          `json:"excludeSameDay"`
	Fees                    []FeeResponse `json:"fees"`
}

// FeeResponse настроенная сумма; Amount в исходном виде
type FeeResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// FromDomain конвертирует настройки в HTTP response
func FromDomain(settings *domain.BusinessSettings) *SettingsResponse {
	timezone := domain.DefaultTimezone
	if settings.Location != nil {
		timezone = settings.Location.String()
	}

	policy := settings.Scheduling
	cancellation := settings.Cancellation

	resp := &SettingsResponse{
		BusinessID: settings.BusinessID,
		Timezone:   timezone,
		Scheduling: SchedulingResponse{
			HolidayBlockedWho:                string(policy.HolidayBlockedWho),
			SpotLimitsEnabled:                policy.SpotLimitsEnabled,
			MaxBookingsPerDay:                policy.MaxBookingsPerDay,
			SpotsBasedOnProviderAvailability: policy.SpotsBasedOnProviderAvailability,
		},
		Cancellation: CancellationResponse{
			ChargeFee:               string(cancellation.ChargeFee),
			PayProvider:             cancellation.PayProvider,
			OverrideServiceCategory: cancellation.OverrideServiceCategory,
			Timing:                  timingNone,
			ExcludeSameDay:          cancellation.Rule.ExcludeSameDay,
			Fees:                    []FeeResponse{},
		},
	}

	switch timing := cancellation.Rule.Timing.(type) {
	case domain.HoursBefore:
		hours := timing.Hours
		resp.Cancellation.Timing = timingHoursBefore
		resp.Cancellation.HoursBefore = &hours
	case domain.DayBeforeCutoff:
		at := timing.At.String()
		resp.Cancellation.Timing = timingDayBeforeCutoff
		resp.Cancellation.CutoffTime = &at
	}

	switch amount := cancellation.Rule.Amount.(type) {
	case domain.SingleFee:
		resp.Cancellation.Fees = append(resp.Cancellation.Fees, toFee(amount.Fee))
	case domain.MultipleFees:
		for _, tier := range amount.Tiers {
			resp.Cancellation.Fees = append(resp.Cancellation.Fees, toFee(tier))
		}
	}

	return resp
}

func toFee(m domain.Money) FeeResponse {
	return FeeResponse{Amount: m.Amount, Currency: m.Currency}
}
