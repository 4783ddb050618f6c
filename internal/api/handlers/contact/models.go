package contact

import (
	"errors"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errMissingFields = errors.New("missing fields")
	errInvalidEmail  = errors.New("invalid email")
)

// ContactRequest заявка с формы обратной связи
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r *ContactRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Message) == "" {
		return errMissingFields
	}
	if !emailPattern.MatchString(r.Email) {
		return errInvalidEmail
	}
	return nil
}

// ContactResponse подтверждение приема заявки
type ContactResponse struct {
	Message string `json:"message"`
}
