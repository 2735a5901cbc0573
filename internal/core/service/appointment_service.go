package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

// SlotLocker serialises bookings of the same (date, slot) pair. Redis backs
// it when configured so the guard spans processes.
type SlotLocker interface {
	// Acquire returns ok=false when another booking currently holds the slot.
	Acquire(ctx context.Context, date, slot string) (token string, ok bool, err error)
	Release(ctx context.Context, date, slot, token string) error
}

type AppointmentService struct {
	repo   ports.AppointmentRepository
	locker SlotLocker
	logger zerolog.Logger
	now    func() time.Time
}

func NewAppointmentService(repo ports.AppointmentRepository, locker SlotLocker, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		repo:   repo,
		locker: locker,
		logger: logger,
		now:    time.Now,
	}
}

// Book creates a confirmed appointment. The slot is locked, re-checked
// against the store and only then inserted, so a slot already held by a
// non-cancelled appointment yields domain.ErrSlotUnavailable. If the lock
// backend itself fails the booking proceeds unguarded.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	in = trimBooking(in)
	if err := validateBooking(in); err != nil {
		return nil, err
	}

	token, ok, err := s.locker.Acquire(ctx, in.Date, in.Time)
	switch {
	case err != nil:
		s.logger.Warn().Err(err).Str("date", in.Date).Str("time", in.Time).Msg("slot lock failed, booking unguarded")
	case !ok:
		return nil, domain.ErrSlotUnavailable
	default:
		defer func() {
			if relErr := s.locker.Release(ctx, in.Date, in.Time, token); relErr != nil {
				s.logger.Warn().Err(relErr).Str("date", in.Date).Str("time", in.Time).Msg("slot unlock failed")
			}
		}()
	}

	held, err := s.repo.List(ctx, ports.AppointmentFilter{Date: in.Date, ExcludeCancelled: true})
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	for _, a := range held {
		if a.Time == in.Time {
			s.logger.Info().Str("date", in.Date).Str("time", in.Time).Msg("slot already booked")
			return nil, domain.ErrSlotUnavailable
		}
	}

	appt := &domain.Appointment{
		Name:      in.Name,
		Phone:     in.Phone,
		Service:   in.Service,
		Date:      in.Date,
		Time:      in.Time,
		Status:    domain.StatusConfirmed,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, appt); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert appointment")
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", appt.ID).
		Str("date", appt.Date).
		Str("time", appt.Time).
		Str("service", appt.Service).
		Msg("appointment booked")

	return appt, nil
}

// List returns every appointment, newest first.
func (s *AppointmentService) List(ctx context.Context) ([]*domain.Appointment, error) {
	list, err := s.repo.List(ctx, ports.AppointmentFilter{})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return list, nil
}

// ListByDate returns every appointment on date regardless of status.
func (s *AppointmentService) ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	list, err := s.repo.List(ctx, ports.AppointmentFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("list appointments by date: %w", err)
	}
	return list, nil
}

// Availability returns the free and booked catalog slots for date.
func (s *AppointmentService) Availability(ctx context.Context, date string) (*domain.Availability, error) {
	held, err := s.repo.List(ctx, ports.AppointmentFilter{Date: date, ExcludeCancelled: true})
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}
	av := domain.ComputeAvailability(date, held)
	return &av, nil
}

// UpdateStatus moves an appointment to one of the three known statuses. An
// unknown status is rejected before the store is touched.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string) (*domain.Appointment, error) {
	next, err := domain.ParseAppointmentStatus(strings.TrimSpace(status))
	if err != nil {
		return nil, err
	}

	appt, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	s.logger.Info().Str("appointment_id", id).Str("status", string(next)).Msg("appointment status updated")
	return appt, nil
}

// CompletePast marks confirmed appointments dated before today as completed
// and returns how many were updated.
func (s *AppointmentService) CompletePast(ctx context.Context, today string) (int, error) {
	stale, err := s.repo.List(ctx, ports.AppointmentFilter{Status: domain.StatusConfirmed, Before: today})
	if err != nil {
		return 0, fmt.Errorf("complete past appointments: %w", err)
	}

	done := 0
	for _, a := range stale {
		if _, err := s.repo.UpdateStatus(ctx, a.ID, domain.StatusCompleted); err != nil {
			return done, fmt.Errorf("complete appointment %s: %w", a.ID, err)
		}
		done++
	}
	return done, nil
}

func trimBooking(in ports.BookAppointmentInput) ports.BookAppointmentInput {
	return ports.BookAppointmentInput{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Service: strings.TrimSpace(in.Service),
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
	}
}

func validateBooking(in ports.BookAppointmentInput) error {
	switch {
	case in.Name == "":
		return domain.InvalidInput("name is required")
	case in.Phone == "":
		return domain.InvalidInput("phone is required")
	case in.Service == "":
		return domain.InvalidInput("service is required")
	case in.Date == "":
		return domain.InvalidInput("date is required")
	case in.Time == "":
		return domain.InvalidInput("time is required")
	case !domain.IsCatalogSlot(in.Time):
		return domain.InvalidInput("time %q is not a bookable slot", in.Time)
	}
	return nil
}
