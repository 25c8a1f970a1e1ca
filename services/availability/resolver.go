package availability

import (
	"fmt"

	bookingRepo "clinicportal/database/repository/booking"
	catalogRepo "clinicportal/database/repository/catalog"
	"clinicportal/models"
)

// TwoQueryResolver fetches the full catalog and the date's bookings in two
// reads and computes the set difference in-process.
type TwoQueryResolver struct {
	CatalogRepo catalogRepo.CatalogRepository
	BookingRepo bookingRepo.BookingRepository
}

func (r *TwoQueryResolver) Resolve(date string) ([]models.AppointmentOption, error) {
	options, err := r.CatalogRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment options: %w", err)
	}

	booked, err := r.BookingRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	return RemainingSlots(options, booked), nil
}
