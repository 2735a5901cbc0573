package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

func TestAppointmentFilter(t *testing.T) {
	cases := []struct {
		name string
		in   ports.AppointmentFilter
		want bson.M
	}{
		{"empty", ports.AppointmentFilter{}, bson.M{}},
		{
			"slot holders on a date",
			ports.AppointmentFilter{Date: "2025-03-10", ExcludeCancelled: true},
			bson.M{"date": bson.M{"$eq": "2025-03-10"}, "status": bson.M{"$ne": "cancelled"}},
		},
		{
			"stale confirmed",
			ports.AppointmentFilter{Status: domain.StatusConfirmed, Before: "2025-03-10"},
			bson.M{"date": bson.M{"$lt": "2025-03-10"}, "status": bson.M{"$eq": "confirmed"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := appointmentFilter(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("filter mismatch:\n got %v\nwant %v", got, tc.want)
			}
		})
	}
}
