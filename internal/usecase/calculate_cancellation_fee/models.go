package calculate_cancellation_fee

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Исходы расчета для метрик
const (
	OutcomeCharged = "charged"
	OutcomeFree    = "free"
)

// Request модель запроса расчета платы за отмену
type Request struct {
	BusinessID int64
	BookingID  int64
}

// Response модель ответа
type Response struct {
	BookingID   int64
	Fee         *domain.Fee // nil: плата не начисляется
	PayProvider bool        // плата перечисляется провайдеру
	EvaluatedAt time.Time   // момент, на который выполнен расчет, в часовом поясе бизнеса
}
