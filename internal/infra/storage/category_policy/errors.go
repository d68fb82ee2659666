package category_policy

import "errors"

var (
	// ErrPolicyNotFound возвращается, когда у категории услуги нет собственного правила отмены
	ErrPolicyNotFound = errors.New("category_policy.repository: policy not found")

	// ErrDecodePolicy возвращается, когда JSON документ правила не удалось разобрать
	ErrDecodePolicy = errors.New("category_policy.repository: failed to decode policy")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("category_policy.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("category_policy.repository: failed to scan row")
)
