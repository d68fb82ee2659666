package calculate_cancellation_fee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	categoryPolicyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/category_policy"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type stubBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (s *stubBookingRepo) GetByID(ctx context.Context, businessID, bookingID int64) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type stubCategoryRepo struct {
	policy *domain.CategoryCancellationPolicy
	err    error
	calls  int
}

func (s *stubCategoryRepo) GetByCategory(ctx context.Context, businessID, categoryID int64) (*domain.CategoryCancellationPolicy, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.policy, nil
}

type stubSettings struct {
	settings *domain.BusinessSettings
}

func (s *stubSettings) Get(ctx context.Context, businessID int64) (*domain.BusinessSettings, error) {
	return s.settings, nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) IncCancellationFee(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

func newUseCase(booking *stubBookingRepo, category *stubCategoryRepo, policy domain.CancellationPolicy, now time.Time) (*UseCase, *recordingMetrics) {
	metrics := &recordingMetrics{}
	settings := &stubSettings{settings: &domain.BusinessSettings{BusinessID: 1, Location: time.UTC, Cancellation: policy}}
	uc := NewUseCase(booking, category, settings, metrics, logger.NewNop()).
		WithTimeProvider(fixedTime{now: now})
	return uc, metrics
}

func TestUseCase_Execute_Charged(t *testing.T) {
	booking := bookingAt("2026-02-12", "10:00")
	policy := domain.CancellationPolicy{ChargeFee: domain.ChargeFeeYes, PayProvider: true, Rule: cutoffRule("18:00")}

	uc, metrics := newUseCase(&stubBookingRepo{booking: booking}, &stubCategoryRepo{}, policy, utc("2026-02-11T18:00:01Z"))

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, &domain.Fee{Amount: 25, Currency: "$"}, resp.Fee)
	assert.True(t, resp.PayProvider)
	assert.Equal(t, utc("2026-02-11T18:00:01Z"), resp.EvaluatedAt)
	assert.Equal(t, []string{OutcomeCharged}, metrics.outcomes)
}

func TestUseCase_Execute_Free(t *testing.T) {
	booking := bookingAt("2026-02-12", "10:00")
	policy := domain.CancellationPolicy{ChargeFee: domain.ChargeFeeYes, PayProvider: true, Rule: cutoffRule("18:00")}

	uc, metrics := newUseCase(&stubBookingRepo{booking: booking}, &stubCategoryRepo{}, policy, utc("2026-02-11T17:59:59Z"))

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Nil(t, resp.Fee)
	assert.False(t, resp.PayProvider)
	assert.Equal(t, []string{OutcomeFree}, metrics.outcomes)
}

func TestUseCase_Execute_CategoryLookup(t *testing.T) {
	booking := bookingAt("2026-02-12", "10:00")
	booking.ServiceCategoryID = ptr.Ptr(int64(3))
	now := utc("2026-02-12T09:00:00Z")

	category := &stubCategoryRepo{policy: &domain.CategoryCancellationPolicy{
		ServiceCategoryID: 3,
		Enabled:           true,
		Rule:              domain.FeeRule{Timing: domain.HoursBefore{Hours: 2}, Amount: domain.SingleFee{Fee: domain.Money{Amount: "15", Currency: "$"}}},
	}}
	uc, _ := newUseCase(&stubBookingRepo{booking: booking}, category, domain.CancellationPolicy{ChargeFee: domain.ChargeFeeYes, Rule: hoursRule(24)}, now)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, &domain.Fee{Amount: 15, Currency: "$"}, resp.Fee)
	assert.Equal(t, 1, category.calls)

	// категория без правила: используется правило бизнеса
	missing := &stubCategoryRepo{err: categoryPolicyRepo.ErrPolicyNotFound}
	uc, _ = newUseCase(&stubBookingRepo{booking: booking}, missing, domain.CancellationPolicy{ChargeFee: domain.ChargeFeeYes, Rule: hoursRule(24)}, now)
	resp, err = uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, &domain.Fee{Amount: 40, Currency: "$"}, resp.Fee)

	// при отказе от платы категория не запрашивается
	skipped := &stubCategoryRepo{}
	uc, _ = newUseCase(&stubBookingRepo{booking: booking}, skipped, domain.CancellationPolicy{ChargeFee: domain.ChargeFeeNo}, now)
	resp, err = uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Nil(t, resp.Fee)
	assert.Equal(t, 0, skipped.calls)

	// chargeFee не задан: категория всё равно запрашивается и применяется
	unset := &stubCategoryRepo{policy: category.policy}
	uc, _ = newUseCase(&stubBookingRepo{booking: booking}, unset, domain.CancellationPolicy{Rule: hoursRule(24)}, now)
	resp, err = uc.Execute(context.Background(), &Request{BusinessID: 1, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, &domain.Fee{Amount: 15, Currency: "$"}, resp.Fee)
	assert.Equal(t, 1, unset.calls)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	now := utc("2026-02-12T09:00:00Z")
	policy := domain.CancellationPolicy{ChargeFee: domain.ChargeFeeYes, Rule: hoursRule(24)}

	cancelled := bookingAt("2026-02-12", "10:00")
	cancelled.Status = domain.StatusCancelled
	completed := bookingAt("2026-02-12", "10:00")
	completed.Status = domain.StatusCompleted

	categorised := bookingAt("2026-02-12", "10:00")
	categorised.ServiceCategoryID = ptr.Ptr(int64(9))

	tests := []struct {
		name     string
		req      *Request
		bookings *stubBookingRepo
		category *stubCategoryRepo
		wantErr  error
	}{
		{name: "bad business", req: &Request{BookingID: 1}, bookings: &stubBookingRepo{}, wantErr: ErrInvalidInput},
		{name: "bad booking id", req: &Request{BusinessID: 1}, bookings: &stubBookingRepo{}, wantErr: ErrInvalidInput},
		{name: "not found", req: &Request{BusinessID: 1, BookingID: 1}, bookings: &stubBookingRepo{err: bookingRepo.ErrBookingNotFound}, wantErr: ErrBookingNotFound},
		{name: "db error", req: &Request{BusinessID: 1, BookingID: 1}, bookings: &stubBookingRepo{err: errors.New("down")}, wantErr: ErrInternal},
		{name: "cancelled", req: &Request{BusinessID: 1, BookingID: 1}, bookings: &stubBookingRepo{booking: cancelled}, wantErr: ErrBookingNotCancellable},
		{name: "completed", req: &Request{BusinessID: 1, BookingID: 1}, bookings: &stubBookingRepo{booking: completed}, wantErr: ErrBookingNotCancellable},
		{name: "malformed booking", req: &Request{BusinessID: 1, BookingID: 1}, bookings: &stubBookingRepo{booking: &domain.Booking{ID: 1, Status: domain.StatusConfirmed}}, wantErr: ErrInvalidInput},
		{
			name:     "category lookup error",
			req:      &Request{BusinessID: 1, BookingID: 1},
			bookings: &stubBookingRepo{booking: categorised},
			category: &stubCategoryRepo{err: errors.New("down")},
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := tt.category
			if category == nil {
				category = &stubCategoryRepo{}
			}
			uc, metrics := newUseCase(tt.bookings, category, policy, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, metrics.outcomes)
		})
	}
}
