package domain

import "time"

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ParseAppointmentStatus accepts exactly one of the three known statuses.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// HoldsSlot reports whether an appointment in this status occupies its slot.
// Completed appointments keep their slot; only cancellation frees it.
func (s AppointmentStatus) HoldsSlot() bool {
	return s != StatusCancelled
}

// Appointment is a barbershop booking for one slot on one date.
type Appointment struct {
	ID        string            `json:"id" bson:"_id"`
	Name      string            `json:"name" bson:"name"`
	Phone     string            `json:"phone" bson:"phone"`
	Service   string            `json:"service" bson:"service"`
	Date      string            `json:"date" bson:"date"`
	Time      string            `json:"time" bson:"time"`
	Status    AppointmentStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"createdAt" bson:"created_at"`
}
