package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64  // ID бизнеса
	Date       string // Дата в формате YYYY-MM-DD
	ProviderID *int64 // Опционально: только расписание этого провайдера
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time         // Дата, на которую запрашивались слоты
	BusinessID int64             // ID бизнеса
	Source     domain.SlotSource // Правило, по которому получен список
	Slots      []domain.TimeSlot // Слоты в порядке возрастания времени начала
}
