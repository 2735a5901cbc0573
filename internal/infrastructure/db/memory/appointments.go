package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

type AppointmentRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Appointment
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{items: make(map[string]domain.Appointment)}
}

func (r *AppointmentRepository) Insert(_ context.Context, a *domain.Appointment) error {
	a.ID = newID()
	a.CreatedAt = stamp(a.CreatedAt)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = *a
	return nil
}

func (r *AppointmentRepository) Get(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *AppointmentRepository) List(_ context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	out := make([]*domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		if !matchAppointment(a, f) {
			continue
		}
		clone := a
		out = append(out, &clone)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(x, y *domain.Appointment) int {
		if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(x.ID, y.ID)
	})
	return out, nil
}

func (r *AppointmentRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	a.Status = status
	r.items[id] = a
	return &a, nil
}

func matchAppointment(a domain.Appointment, f ports.AppointmentFilter) bool {
	switch {
	case f.Date != "" && a.Date != f.Date:
		return false
	case f.Status != "" && a.Status != f.Status:
		return false
	case f.ExcludeCancelled && a.Status == domain.StatusCancelled:
		return false
	case f.Before != "" && a.Date >= f.Before:
		return false
	}
	return true
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
