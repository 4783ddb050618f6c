package create_appointment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Email) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	if !emailPattern.MatchString(req.Customer.Email) {
		return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StaffID) == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// containsSlot проверяет, входит ли время в сетку доступных слотов
func containsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
