package invalidate_settings_cache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type stubCache struct {
	err         error
	invalidated []int64
}

func (s *stubCache) Invalidate(ctx context.Context, businessID int64) error {
	s.invalidated = append(s.invalidated, businessID)
	return s.err
}

func serve(h *Handler, businessID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/businesses/"+businessID+"/settings/cache", nil)
	req = mux.SetURLVars(req, map[string]string{"businessId": businessID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	cache := &stubCache{}
	rec := serve(NewHandler(cache, logger.NewNop()), "12")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{12}, cache.invalidated)
}

func TestHandler_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3"} {
		cache := &stubCache{}
		rec := serve(NewHandler(cache, logger.NewNop()), id)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
		assert.Empty(t, cache.invalidated)
	}
}

func TestHandler_CacheError(t *testing.T) {
	rec := serve(NewHandler(&stubCache{err: errors.New("redis down")}, logger.NewNop()), "12")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
