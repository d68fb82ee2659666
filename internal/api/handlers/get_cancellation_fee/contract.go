package get_cancellation_fee

import (
	"context"

	calculateFee "github.com/m04kA/SMC-SchedulingService/internal/usecase/calculate_cancellation_fee"
)

type CalculateCancellationFeeUseCase interface {
	Execute(ctx context.Context, req *calculateFee.Request) (*calculateFee.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
