package invalidate_settings_cache

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const msgInvalidBusinessID = "некорректный ID бизнеса"

type Handler struct {
	cache  SettingsCache
	logger Logger
}

func NewHandler(cache SettingsCache, logger Logger) *Handler {
	return &Handler{
		cache:  cache,
		logger: logger,
	}
}

// Handle DELETE /api/v1/businesses/{businessId}/settings/cache
// Вызывается после изменения настроек бизнеса, следующее чтение пойдет в БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, err := strconv.ParseInt(mux.Vars(r)["businessId"], 10, 64)
	if err != nil || businessID <= 0 {
		h.logger.Warn("DELETE /businesses/{id}/settings/cache - Invalid business ID: %q", mux.Vars(r)["businessId"])
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	if err := h.cache.Invalidate(r.Context(), businessID); err != nil {
		h.logger.Error("DELETE /businesses/{id}/settings/cache - Failed to invalidate: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /businesses/{id}/settings/cache - Settings cache invalidated: business_id=%d", businessID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
