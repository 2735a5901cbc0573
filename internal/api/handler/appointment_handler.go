package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmemodas/storefront/internal/api/metrics"
	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for barbershop bookings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /api/appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Booking"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req bookAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	appt, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			metrics.BookingConflictsTotal.Inc()
		}
		return err
	}

	metrics.AppointmentsBookedTotal.WithLabelValues(serviceLabel(appt.Service)).Inc()
	return c.JSON(http.StatusCreated, appt)
}

// List handles GET /api/appointments.
//
// @Summary      List appointments, newest first
// @Tags         appointments
// @Produce      json
// @Param        date  query     string  false  "Only this day (YYYY-MM-DD)"
// @Success      200   {array}   domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	q := listAppointmentsQuery{Date: c.QueryParam("date")}
	if err := validate(c, &q); err != nil {
		return err
	}

	var (
		list []*domain.Appointment
		err  error
	)
	if q.Date != "" {
		list, err = h.service.ListByDate(c.Request().Context(), q.Date)
	} else {
		list, err = h.service.List(c.Request().Context())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Availability handles GET /api/appointments/available/:date.
//
// @Summary      Free and booked slots of a day
// @Tags         appointments
// @Produce      json
// @Param        date  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200   {object}  domain.Availability
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/appointments/available/{date} [get]
func (h *AppointmentHandler) Availability(c echo.Context) error {
	p := dateParam{Date: c.Param("date")}
	if err := validate(c, &p); err != nil {
		return err
	}

	av, err := h.service.Availability(c.Request().Context(), p.Date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, av)
}

// UpdateStatus handles PATCH /api/appointments/:id/status.
//
// @Summary      Change an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Appointment id"
// @Param        body  body      updateStatusRequest  true  "confirmed, cancelled or completed"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	appt, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.AppointmentStatusChangesTotal.WithLabelValues(string(appt.Status)).Inc()
	return c.JSON(http.StatusOK, appt)
}

func serviceLabel(name string) string {
	if domain.IsBarberService(name) {
		return name
	}
	return "other"
}
