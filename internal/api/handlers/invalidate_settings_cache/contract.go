package invalidate_settings_cache

import "context"

type SettingsCache interface {
	Invalidate(ctx context.Context, businessID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
