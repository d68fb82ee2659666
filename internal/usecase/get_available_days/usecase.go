package get_available_days

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UseCase use case календаря доступных дней
type UseCase struct {
	settings         SettingsProvider
	availabilityRepo AvailabilityRepository
	holidayRepo      HolidayRepository
	bookingRepo      BookingRepository
	logger           Logger
	maxDays          int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	availabilityRepo AvailabilityRepository,
	holidayRepo HolidayRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:         settings,
		availabilityRepo: availabilityRepo,
		holidayRepo:      holidayRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
		maxDays:          domain.MaxAvailableDaysRange,
	}
}

// WithMaxDays ограничивает длину запрашиваемого диапазона
func (uc *UseCase) WithMaxDays(days int) *UseCase {
	if days > 0 {
		uc.maxDays = days
	}
	return uc
}

// Execute считает количество слотов для каждой даты диапазона.
// Данные загружаются одним запросом на диапазон, слоты считаются по тем же правилам, что и для одной даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: business=%d, from=%s, to=%s", req.BusinessID, req.From, req.To)

	from, to, err := validateRequest(req, uc.maxDays)
	if err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	settings, err := uc.settings.Get(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	policy := settings.Scheduling

	var in get_available_slots.ResolveInput
	in.BusinessID = req.BusinessID
	in.Policy = policy

	if policy.BlocksCustomersOnHolidays() {
		in.Holidays, err = uc.holidayRepo.ListInRange(ctx, req.BusinessID, from, to)
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to get holidays: %v", err)
			return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
	}

	var counts map[string]int
	if policy.SpotLimitsEnabled && policy.MaxBookingsPerDay > 0 {
		counts, err = uc.bookingRepo.CountActiveByDateRange(ctx, req.BusinessID, from, to)
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to count bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
	}

	if policy.SpotsBasedOnProviderAvailability {
		in.Rows, err = uc.availabilityRepo.ListForRange(ctx, req.BusinessID, from, to, req.ProviderID)
		if err != nil {
			uc.logger.Error("GetAvailableDays: failed to get availability: %v", err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
	}

	resp := &Response{BusinessID: req.BusinessID, Days: make([]Day, 0, int(to.Sub(from).Hours()/24)+1)}
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		in.Date = types.FormatDate(date)
		in.ExistingBookings = counts[in.Date]

		res, err := get_available_slots.ResolveSlots(in)
		if err != nil {
			if errors.Is(err, get_available_slots.ErrInvalidInput) {
				uc.logger.Warn("GetAvailableDays: business=%d has malformed availability on %s: %v", req.BusinessID, in.Date, err)
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return nil, fmt.Errorf("%w: failed to resolve %s: %v", ErrInternal, in.Date, err)
		}

		resp.Days = append(resp.Days, Day{Date: res.Date, Source: res.Source, SlotCount: len(res.Slots)})
	}

	uc.logger.Info("GetAvailableDays: resolved %d days for business=%d", len(resp.Days), req.BusinessID)
	return resp, nil
}
