// Package availability derives the per-date availability view: every
// appointment option with the slots still open for booking on that date. The
// view is recomputed on every request and never cached.
package availability

import "clinicportal/models"

// Resolver computes the availability view for a date. Two interchangeable
// implementations exist: TwoQueryResolver differences catalog and bookings
// in-process, AggregateResolver pushes the join into the store. Both return
// one entry per catalog option, in catalog order, and must agree on the
// remaining slots for identical data.
type Resolver interface {
	Resolve(date string) ([]models.AppointmentOption, error)
}

// RemainingSlots subtracts booked slots from each option's slot menu. The
// output keeps catalog order and each option's original slot order, and keeps
// options whose slots are fully booked. Bookings for unknown treatments or
// slots outside the option's menu simply find no match.
func RemainingSlots(options []models.AppointmentOption, booked []models.Booking) []models.AppointmentOption {
	out := make([]models.AppointmentOption, 0, len(options))
	for _, option := range options {
		taken := make(map[string]struct{})
		for _, b := range booked {
			if b.Treatment == option.Name {
				taken[b.Slot] = struct{}{}
			}
		}

		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, ok := taken[slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		option.Slots = remaining
		out = append(out, option)
	}
	return out
}
