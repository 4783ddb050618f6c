package create_appointment

import (
	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// generateTimeSlots генерирует сетку слотов на день: каждые slotDuration минут
// от открытия (включительно) до закрытия (не включительно)
func generateTimeSlots(hours domain.DayHours, slotDuration int) ([]types.TimeString, error) {
	if !hours.IsOpen || hours.Start.IsZero() || hours.End.IsZero() {
		return []types.TimeString{}, nil
	}

	openMinutes, err := hours.Start.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	closeMinutes, err := hours.End.MinutesFromMidnight()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	for m := openMinutes; m < closeMinutes; m += slotDuration {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// availableSlots убирает из сетки слоты, пересекающиеся с активными записями.
// Интервалы полуоткрытые, граничное касание пересечением не считается.
func availableSlots(
	slots []types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) ([]types.TimeString, error) {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		slotEnd, err := slot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}

		overlaps := false
		for _, appt := range appointments {
			if !appt.IsActive() {
				continue
			}
			if appt.StartTime.IsBefore(slotEnd) && appt.EndTime.IsAfter(slot) {
				overlaps = true
				break
			}
		}

		if !overlaps {
			available = append(available, slot)
		}
	}

	return available, nil
}
