package get_available_slots

import (
	"context"
	"errors"
	"fmt"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	settings         SettingsProvider
	availabilityRepo AvailabilityRepository
	holidayRepo      HolidayRepository
	bookingRepo      BookingRepository
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsProvider,
	availabilityRepo AvailabilityRepository,
	holidayRepo HolidayRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:         settings,
		availabilityRepo: availabilityRepo,
		holidayRepo:      holidayRepo,
		bookingRepo:      bookingRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s", req.BusinessID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки бизнеса
	settings, err := uc.settings.Get(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	policy := settings.Scheduling

	in := ResolveInput{
		BusinessID: req.BusinessID,
		Date:       req.Date,
		Policy:     policy,
	}

	// 3. Загружаем только то, что нужно правилам политики
	if policy.BlocksCustomersOnHolidays() {
		in.Holidays, err = uc.holidayRepo.ListInRange(ctx, req.BusinessID, date, date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get holidays: %v", err)
			return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
	}

	if policy.SpotLimitsEnabled && policy.MaxBookingsPerDay > 0 {
		in.ExistingBookings, err = uc.bookingRepo.CountActiveByDate(ctx, req.BusinessID, date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to count bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
	}

	if policy.SpotsBasedOnProviderAvailability {
		in.Rows, err = uc.availabilityRepo.ListForDate(ctx, req.BusinessID, date, req.ProviderID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
	}

	// 4. Расчет слотов
	res, err := ResolveSlots(in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			uc.logger.Warn("GetAvailableSlots: business=%d has malformed availability: %v", req.BusinessID, err)
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve slots: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	uc.metrics.IncSlotsResolved(string(res.Source))
	uc.logger.Info("GetAvailableSlots: resolved %d slots for business=%d, date=%s, source=%s",
		len(res.Slots), req.BusinessID, req.Date, res.Source)

	return &Response{
		Date:       res.Date,
		BusinessID: req.BusinessID,
		Source:     res.Source,
		Slots:      res.Slots,
	}, nil
}
