package get_cancellation_fee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	calculateFee "github.com/m04kA/SMC-SchedulingService/internal/usecase/calculate_cancellation_fee"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgCannotCancel      = "бронирование не может быть отменено"
	msgInvalidBooking    = "некорректные дата или время бронирования"
)

type Handler struct {
	useCase CalculateCancellationFeeUseCase
	logger  Logger
}

func NewHandler(useCase CalculateCancellationFeeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/bookings/{bookingId}/cancellation-fee
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings/{id}/cancellation-fee - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings/{id}/cancellation-fee - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &calculateFee.Request{BusinessID: businessID, BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, calculateFee.ErrBookingNotFound):
			h.logger.Warn("GET /businesses/{id}/bookings/{id}/cancellation-fee - Booking not found: business_id=%d, booking_id=%d",
				businessID, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calculateFee.ErrBookingNotCancellable):
			h.logger.Warn("GET /businesses/{id}/bookings/{id}/cancellation-fee - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, calculateFee.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/bookings/{id}/cancellation-fee - Invalid booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		default:
			h.logger.Error("GET /businesses/{id}/bookings/{id}/cancellation-fee - Failed to calculate fee: business_id=%d, booking_id=%d, error=%v",
				businessID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /businesses/{id}/bookings/{id}/cancellation-fee - Fee calculated: booking_id=%d, fee_applies=%t",
		bookingID, response.FeeApplies)
	handlers.RespondJSON(w, http.StatusOK, response)
}
