package ports

import (
	"context"

	"github.com/mmemodas/storefront/internal/core/domain"
)

// BookAppointmentInput is the DTO passed from the transport layer to AppointmentService.
type BookAppointmentInput struct {
	Name    string
	Phone   string
	Service string
	Date    string
	Time    string
}

type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error)
	Availability(ctx context.Context, date string) (*domain.Availability, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Appointment, error)
}
