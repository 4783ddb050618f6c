package get_available_slots

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

// filterBookedSlots убирает слоты, пересекающиеся с существующими записями.
// Интервалы полуоткрытые: слот [s, s+duration) пересекается с записью
// [start, end) только при s < end && s+duration > start. Граничное касание
// пересечением не считается.
func filterBookedSlots(
	slots []types.TimeString,
	slotDuration int,
	appointments []*domain.Appointment,
) ([]types.TimeString, error) {
	available := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		overlaps, err := overlapsAny(slot, slotDuration, appointments)
		if err != nil {
			return nil, err
		}
		if !overlaps {
			available = append(available, slot)
		}
	}

	return available, nil
}

// overlapsAny проверяет пересечение слота хотя бы с одной активной записью
func overlapsAny(slot types.TimeString, slotDuration int, appointments []*domain.Appointment) (bool, error) {
	slotEnd, err := slot.AddMinutes(slotDuration)
	if err != nil {
		return false, err
	}

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		if appt.StartTime.IsBefore(slotEnd) && appt.EndTime.IsAfter(slot) {
			return true, nil
		}
	}

	return false, nil
}
