package bookingRepo

import "clinicportal/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByDate retrieves all bookings whose appointmentDate equals date.
	GetByDate(date string) ([]models.Booking, error)
	// GetByEmail retrieves all bookings made by the given patient email.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByKey retrieves bookings matching the (date, email, treatment)
	// triple exactly. Used for the duplicate-booking check.
	GetByKey(date, email, treatment string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
}
