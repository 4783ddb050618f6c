package salonconfig

import (
	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// defaultConfig стартовая конфигурация для свежей инсталляции:
// будни 09:00-18:00, суббота до 14:00, воскресенье и понедельник выходные.
func defaultConfig() *domain.SalonConfig {
	open := func(start, end string) domain.DayHours {
		return domain.DayHours{
			IsOpen: true,
			Start:  types.TimeString(start),
			End:    types.TimeString(end),
		}
	}

	return &domain.SalonConfig{
		BusinessHours: map[int]domain.DayHours{
			0: {IsOpen: false},
			1: {IsOpen: false},
			2: open("09:00", "18:00"),
			3: open("09:00", "18:00"),
			4: open("09:00", "18:00"),
			5: open("09:00", "18:00"),
			6: open("09:00", "14:00"),
		},
		AppointmentDuration: domain.DefaultAppointmentDuration,
		Services: []domain.Service{
			{
				ID:       "damen-schnitt",
				Category: "Damen",
				Name:     "Damenhaarschnitt",
				Price:    42,
				Duration: 45,
				Active:   true,
			},
			{
				ID:       "herren-schnitt",
				Category: "Herren",
				Name:     "Herrenhaarschnitt",
				Price:    28,
				Duration: 30,
				Active:   true,
			},
			{
				ID:       "faerben",
				Category: "Farbe",
				Name:     "Färben & Pflege",
				Price:    65,
				Duration: 90,
				Active:   true,
			},
		},
		Staff: []domain.Staff{
			{
				ID:          "martina",
				Name:        "Martina",
				Position:    "Friseurmeisterin",
				Active:      true,
				WorkingDays: []int{2, 3, 4, 5, 6},
			},
		},
	}
}
