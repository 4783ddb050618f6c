package domain

import (
	"time"

	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatuses lists every status an appointment may carry
var ValidStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Customer contact data captured with a booking. Free form, no identity of its own.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// ServiceSnapshot is the service data frozen at booking time.
// Later catalog changes must not alter existing appointments.
type ServiceSnapshot struct {
	ID       string
	Name     string
	Price    float64
	Duration int
}

// StaffSnapshot is the staff data frozen at booking time
type StaffSnapshot struct {
	ID   string
	Name string
}

// Appointment represents a booked salon visit
type Appointment struct {
	ID       int64
	Customer Customer
	Service  ServiceSnapshot
	Staff    StaffSnapshot

	// Date is the calendar day, stored at the midnight boundary.
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusConfirmed
}

// IsTerminal reports whether the status allows no further transitions
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	Date    *time.Time         // single calendar day (optional)
	Status  *AppointmentStatus // optional
	StaffID *string            // optional, matches the staff snapshot id
}
