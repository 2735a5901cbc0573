package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

// AppointmentFilter restricts an appointment listing. Zero fields do not filter.
type AppointmentFilter struct {
	Date             string                   // exact date match
	Status           domain.AppointmentStatus // exact status match
	ExcludeCancelled bool                     // drop cancelled appointments
	Before           string                   // date strictly before (YYYY-MM-DD)
}

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	// Insert assigns a fresh ID (and CreatedAt when zero) and stores a.
	Insert(ctx context.Context, a *domain.Appointment) error
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	// List returns matching appointments, newest first.
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	// UpdateStatus returns domain.ErrAppointmentNotFound for an unknown id.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}
