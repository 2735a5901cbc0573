package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")

	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrSlotUnavailable = errors.New("slot unavailable")
)

// InvalidInput wraps ErrInvalidInput with a caller-facing detail.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
