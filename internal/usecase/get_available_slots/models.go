package get_available_slots

import (
	"time"

	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
	StaffID *string   // Фильтр по мастеру (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time          // Дата, на которую запрашивались слоты
	StaffID *string            // Фильтр по мастеру, если был задан
	Slots   []types.TimeString // Доступные времена начала, по возрастанию
}
