package domain

// DateLayout is the calendar date format used by appointments.
const DateLayout = "2006-01-02"

// slotCatalog is the ordered set of bookable half-hour slots: a morning
// block and an afternoon/evening block.
var slotCatalog = [...]string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
}

// SlotCatalog returns a copy of the slot catalog in booking order.
func SlotCatalog() []string {
	out := make([]string, len(slotCatalog))
	copy(out, slotCatalog[:])
	return out
}

func IsCatalogSlot(t string) bool {
	for _, s := range slotCatalog {
		if s == t {
			return true
		}
	}
	return false
}

// Availability is the partition of the slot catalog for one date.
type Availability struct {
	Date      string   `json:"date"`
	Available []string `json:"available"`
	Booked    []string `json:"booked"`
}

// ComputeAvailability splits the catalog into free and booked slots for date.
// Appointments on other dates or in a status that does not hold a slot are
// ignored. Both lists keep catalog order and never overlap. The date string
// is not validated.
func ComputeAvailability(date string, appointments []*Appointment) Availability {
	taken := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		if a == nil || a.Date != date || !a.Status.HoldsSlot() {
			continue
		}
		taken[a.Time] = struct{}{}
	}

	av := Availability{
		Date:      date,
		Available: make([]string, 0, len(slotCatalog)),
		Booked:    make([]string, 0, len(taken)),
	}
	for _, slot := range slotCatalog {
		if _, ok := taken[slot]; ok {
			av.Booked = append(av.Booked, slot)
			continue
		}
		av.Available = append(av.Available, slot)
	}
	return av
}
