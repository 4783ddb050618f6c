package get_available_slots

import (
	"github.com/lockenroll/LR-SalonService/internal/domain"
	getAvailableSlots "github.com/lockenroll/LR-SalonService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsResponse HTTP ответ со свободными слотами
type GetAvailableSlotsResponse struct {
	Date    string   `json:"date"`              // "2026-03-14"
	StaffID *string  `json:"staffId,omitempty"` // Фильтр по мастеру, если был задан
	Slots   []string `json:"slots"`             // Времена начала свободных слотов
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &GetAvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		StaffID: resp.StaffID,
		Slots:   slots,
	}
}
