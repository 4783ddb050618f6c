package domain

import (
	"time"

	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// DayHours opening hours for a single weekday
type DayHours struct {
	IsOpen bool             `json:"isOpen"`
	Start  types.TimeString `json:"start,omitempty"`
	End    types.TimeString `json:"end,omitempty"`
}

// Service an entry of the service catalog
type Service struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
	Active      bool    `json:"active"`
}

// Staff a member of the salon team
type Staff struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Specialties []string `json:"specialties,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Active      bool     `json:"active"`

	// WorkingDays weekday indices (0=Sunday .. 6=Saturday)
	WorkingDays []int `json:"workingDays,omitempty"`
}

// SalonConfig the whole salon configuration: opening hours, slot granularity
// and the service/staff catalogs. Loaded and saved wholesale; concurrent
// readers observe either the old or the new version, never a mix.
type SalonConfig struct {
	// BusinessHours keyed by weekday index (0=Sunday .. 6=Saturday).
	// A missing key means the salon is closed on that day.
	BusinessHours map[int]DayHours `json:"businessHours"`

	// AppointmentDuration default slot granularity in minutes.
	AppointmentDuration int `json:"appointmentDuration"`

	Services []Service `json:"services"`
	Staff    []Staff   `json:"staff"`
}

// HoursForDate returns the opening hours for the weekday of date
func (c *SalonConfig) HoursForDate(date time.Time) (DayHours, bool) {
	hours, ok := c.BusinessHours[int(date.Weekday())]
	return hours, ok
}

// ServiceByID looks up a catalog service by id
func (c *SalonConfig) ServiceByID(id string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

// StaffByID looks up a staff member by id
func (c *SalonConfig) StaffByID(id string) (*Staff, bool) {
	for i := range c.Staff {
		if c.Staff[i].ID == id {
			return &c.Staff[i], true
		}
	}
	return nil, false
}

// SlotDuration returns the configured slot granularity or the default
func (c *SalonConfig) SlotDuration() int {
	if c.AppointmentDuration > 0 {
		return c.AppointmentDuration
	}
	return DefaultAppointmentDuration
}
