package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда у бизнеса нет сохраненных настроек
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrDecodePolicy возвращается, когда JSON документ политики не удалось разобрать
	ErrDecodePolicy = errors.New("settings.repository: failed to decode policy")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
