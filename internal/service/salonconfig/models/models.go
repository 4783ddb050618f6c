package models

import (
	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на полную замену конфигурации салона
type UpdateConfigRequest struct {
	BusinessHours       map[int]domain.DayHours `json:"businessHours"`
	AppointmentDuration int                     `json:"appointmentDuration"`
	Services            []domain.Service        `json:"services"`
	Staff               []domain.Staff          `json:"staff"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomain() *domain.SalonConfig {
	return &domain.SalonConfig{
		BusinessHours:       r.BusinessHours,
		AppointmentDuration: r.AppointmentDuration,
		Services:            r.Services,
		Staff:               r.Staff,
	}
}

// ServiceRequest запрос на добавление или частичное обновление услуги.
// При добавлении ID опционален (генерируется), при обновлении nil-поля
// не изменяются.
type ServiceRequest struct {
	ID          *string  `json:"id,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// StaffRequest запрос на добавление или частичное обновление мастера
type StaffRequest struct {
	ID          *string  `json:"id,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Position    *string  `json:"position,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	WorkingDays []int    `json:"workingDays,omitempty"`
}

// Response модели

// ConfigResponse ответ с конфигурацией салона
type ConfigResponse struct {
	BusinessHours       map[int]domain.DayHours `json:"businessHours"`
	AppointmentDuration int                     `json:"appointmentDuration"`
	Services            []domain.Service        `json:"services"`
	Staff               []domain.Staff          `json:"staff"`
}

// BusinessHoursResponse ответ с часами работы по дням недели (0 - воскресенье)
type BusinessHoursResponse struct {
	BusinessHours map[int]domain.DayHours `json:"businessHours"`
}

// ServicesResponse ответ с каталогом услуг
type ServicesResponse struct {
	Services []domain.Service `json:"services"`
}

// StaffResponse ответ со списком мастеров
type StaffResponse struct {
	Staff []domain.Staff `json:"staff"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.SalonConfig) *ConfigResponse {
	if cfg == nil {
		return nil
	}
	return &ConfigResponse{
		BusinessHours:       cfg.BusinessHours,
		AppointmentDuration: cfg.AppointmentDuration,
		Services:            cfg.Services,
		Staff:               cfg.Staff,
	}
}
