// Package metrics defines the business counters of the storefront API. HTTP
// request metrics come from echoprometheus; these cover what the requests did.
//
// Call Register once per registry before serving.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// AppointmentsBookedTotal counts confirmed bookings.
// Label:
//   - service: the barber service named in the booking
var AppointmentsBookedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked, by service.",
	},
	[]string{"service"},
)

// BookingConflictsTotal counts bookings rejected because the slot was taken.
var BookingConflictsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_conflicts_total",
		Help:      "Total number of bookings rejected because the slot was already held.",
	},
)

// AppointmentStatusChangesTotal counts status updates.
// Label:
//   - status: confirmed, cancelled or completed
var AppointmentStatusChangesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_status_changes_total",
		Help:      "Total number of appointment status updates, by new status.",
	},
	[]string{"status"},
)

var ProductsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

var GalleryImagesCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gallery_images_created_total",
		Help:      "Total number of gallery images created.",
	},
)

var CheckoutsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of carts priced for hand-off.",
	},
)

// CheckoutOrderValue observes the total of each priced cart, in reais.
var CheckoutOrderValue = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_order_value_brl",
		Help:      "Order totals handed off to chat, in BRL.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600, 3200},
	},
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AppointmentsBookedTotal,
		BookingConflictsTotal,
		AppointmentStatusChangesTotal,
		ProductsCreatedTotal,
		GalleryImagesCreatedTotal,
		CheckoutsTotal,
		CheckoutOrderValue,
	}
}

// Register adds every metric to reg. Metrics already present are skipped.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
