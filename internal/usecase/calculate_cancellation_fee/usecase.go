package calculate_cancellation_fee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	categoryPolicyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/category_policy"
)

// UseCase use case расчета платы за отмену бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	categoryPolicies CategoryPolicyProvider
	settings         SettingsProvider
	metrics          Metrics
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	categoryPolicies CategoryPolicyProvider,
	settings SettingsProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		categoryPolicies: categoryPolicies,
		settings:         settings,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет расчет платы за отмену на текущий момент
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateCancellationFee: business=%d, booking=%d", req.BusinessID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateCancellationFee: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BusinessID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CalculateCancellationFee: booking id=%d not found in business=%d", req.BookingID, req.BusinessID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CalculateCancellationFee: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := validateCancellable(booking); err != nil {
		uc.logger.Warn("CalculateCancellationFee: booking id=%d: %v", req.BookingID, err)
		return nil, err
	}

	// 4. Настройки бизнеса
	settings, err := uc.settings.Get(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("CalculateCancellationFee: failed to get settings for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	policy := settings.Cancellation
	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}

	// 5. Правило категории нужно, только если бизнес не отказался от платы и не перекрывает категории
	var category *domain.CategoryCancellationPolicy
	if policy.ChargeFee != domain.ChargeFeeNo && !policy.OverrideServiceCategory && booking.ServiceCategoryID != nil {
		category, err = uc.categoryPolicies.GetByCategory(ctx, req.BusinessID, *booking.ServiceCategoryID)
		if err != nil && !errors.Is(err, categoryPolicyRepo.ErrPolicyNotFound) {
			uc.logger.Error("CalculateCancellationFee: failed to get category policy: %v", err)
			return nil, fmt.Errorf("%w: failed to get category policy: %v", ErrInternal, err)
		}
	}

	// 6. Расчет
	fee, err := ComputeFee(booking, policy, category, loc, now)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			uc.logger.Warn("CalculateCancellationFee: booking id=%d has malformed schedule: %v", req.BookingID, err)
			return nil, err
		}
		uc.logger.Error("CalculateCancellationFee: failed to compute fee: %v", err)
		return nil, fmt.Errorf("%w: failed to compute fee: %v", ErrInternal, err)
	}

	outcome := OutcomeFree
	if fee != nil {
		outcome = OutcomeCharged
		uc.logger.Info("CalculateCancellationFee: booking=%d fee %.2f %s", req.BookingID, fee.Amount, fee.Currency)
	} else {
		uc.logger.Info("CalculateCancellationFee: booking=%d no fee", req.BookingID)
	}
	uc.metrics.IncCancellationFee(outcome)

	return &Response{
		BookingID:   req.BookingID,
		Fee:         fee,
		PayProvider: fee != nil && policy.PayProvider,
		EvaluatedAt: now.In(loc),
	}, nil
}
