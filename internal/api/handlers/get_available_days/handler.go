package get_available_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidProviderID = "некорректный ID провайдера"
	msgMissingRange      = "параметры from и to обязательны"
	msgInvalidRequest    = "некорректные параметры запроса"
	msgRangeTooLong      = "слишком длинный диапазон дат"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/available-days
// Query params: from, to (required, YYYY-MM-DD, inclusive), providerId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/available-days - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()
	req := &getAvailableDays.Request{
		BusinessID: businessID,
		From:       query.Get("from"),
		To:         query.Get("to"),
	}
	if req.From == "" || req.To == "" {
		h.logger.Warn("GET /businesses/{id}/available-days - Missing range: from=%q, to=%q", req.From, req.To)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	if raw := query.Get("providerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/available-days - Invalid provider ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)
			return
		}
		req.ProviderID = &id
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrRangeTooLong):
			h.logger.Warn("GET /businesses/{id}/available-days - Range too long: business_id=%d, from=%s, to=%s",
				businessID, req.From, req.To)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/available-days - Invalid request: business_id=%d, error=%v", businessID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /businesses/{id}/available-days - Failed to get days: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/available-days - Days retrieved successfully: business_id=%d, days_count=%d",
		businessID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
