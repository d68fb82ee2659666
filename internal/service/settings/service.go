package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	categoryPolicyRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/category_policy"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
)

// Service сервис чтения политик бизнеса.
// Хранимые документы преобразуются в доменные типы один раз; поля, которые не удалось
// прочитать, заменяются безопасными значениями по умолчанию и попадают в лог.
type Service struct {
	settingsRepo       SettingsRepository
	categoryPolicyRepo CategoryPolicyRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	settingsRepo SettingsRepository,
	categoryPolicyRepo CategoryPolicyRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:       settingsRepo,
		categoryPolicyRepo: categoryPolicyRepo,
		logger:             logger,
	}
}

// Get возвращает настройки бизнеса.
// Для бизнеса без сохраненных настроек или с неразбираемыми документами возвращаются настройки по умолчанию.
func (s *Service) Get(ctx context.Context, businessID int64) (*domain.BusinessSettings, error) {
	record, err := s.settingsRepo.GetByBusiness(ctx, businessID)
	switch {
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		s.logger.Info("Get: business=%d has no settings, using defaults", businessID)
		record = &domain.BusinessSettingsRecord{BusinessID: businessID}

	case errors.Is(err, settingsRepo.ErrDecodePolicy):
		s.logger.Error("Get: business=%d has unreadable settings, using defaults: %v", businessID, err)
		record = &domain.BusinessSettingsRecord{BusinessID: businessID}

	case err != nil:
		s.logger.Error("Get: failed to get settings for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	settings, problems := record.ToDomain()
	if problems != nil {
		s.logger.Warn("Get: business=%d settings partially invalid, defaults applied: %v", businessID, problems)
	}

	return settings, nil
}

// GetByCategory возвращает правило отмены категории услуги.
// Если у категории нет правила, возвращается ошибка category_policy.ErrPolicyNotFound.
func (s *Service) GetByCategory(ctx context.Context, businessID, categoryID int64) (*domain.CategoryCancellationPolicy, error) {
	row, err := s.categoryPolicyRepo.GetByCategory(ctx, businessID, categoryID)
	switch {
	case errors.Is(err, categoryPolicyRepo.ErrPolicyNotFound):
		return nil, err

	case errors.Is(err, categoryPolicyRepo.ErrDecodePolicy):
		// неразбираемое правило категории считается отсутствующим
		s.logger.Error("GetByCategory: business=%d category=%d has unreadable policy: %v", businessID, categoryID, err)
		return nil, categoryPolicyRepo.ErrPolicyNotFound

	case err != nil:
		s.logger.Error("GetByCategory: failed to get policy for business=%d category=%d: %v", businessID, categoryID, err)
		return nil, fmt.Errorf("%w: GetByCategory - repository error: %v", ErrInternal, err)
	}

	policy, problems := row.ToDomain()
	if problems != nil {
		s.logger.Warn("GetByCategory: business=%d category=%d policy partially invalid: %v", businessID, categoryID, problems)
	}

	return policy, nil
}
