package category_policy

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Row хранимое правило отмены категории услуги
type Row struct {
	ID                int64
	BusinessID        int64
	ServiceCategoryID int64
	Policy            domain.CategoryCancellationPolicyRecord
}

// ToDomain преобразует хранимое правило; при ошибках в полях правило остается пригодным и не начисляет плату
func (r *Row) ToDomain() (*domain.CategoryCancellationPolicy, error) {
	rule, enabled, err := r.Policy.ToDomain()
	return &domain.CategoryCancellationPolicy{
		ID:                r.ID,
		BusinessID:        r.BusinessID,
		ServiceCategoryID: r.ServiceCategoryID,
		Enabled:           enabled,
		Rule:              rule,
	}, err
}
