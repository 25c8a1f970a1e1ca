// Package booking holds the admission rule for new bookings: a patient may
// hold at most one booking per treatment per date, regardless of slot.
package booking

import (
	"errors"
	"fmt"

	bookingRepo "clinicportal/database/repository/booking"
	"clinicportal/models"
	"clinicportal/utils"

	"go.uber.org/zap"
)

// BookingService admits new bookings and serves a patient's booking history.
type BookingService interface {
	// Admit decides whether the requested booking may be made. A conflict is
	// reported through the returned InsertAck, not the error.
	Admit(booking models.Booking) (models.InsertAck, error)
	// ListByEmail returns all bookings made by the given patient.
	ListByEmail(email string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService against the booking repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// Admit checks for an existing booking with the same (appointmentDate, email,
// treatment) triple and rejects if one exists; otherwise it persists the
// booking. The slot plays no part in the conflict check: one booking per
// treatment per day per patient, even at a different time.
func (s *DefaultBookingService) Admit(booking models.Booking) (models.InsertAck, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByKey(booking.AppointmentDate, booking.Email, booking.Treatment)
	if err != nil {
		return models.InsertAck{}, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("booking rejected: duplicate for date",
			zap.String("email", booking.Email),
			zap.String("treatment", booking.Treatment),
			zap.String("date", booking.AppointmentDate))
		return rejectedAck(booking.AppointmentDate), nil
	}

	if err := s.Repo.Create(&booking); err != nil {
		// A concurrent identical request can slip past the read; the store's
		// uniqueness index turns the losing insert into the same rejection.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return rejectedAck(booking.AppointmentDate), nil
		}
		return models.InsertAck{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return models.InsertAck{Acknowledged: true, InsertedID: booking.ID}, nil
}

// ListByEmail returns all bookings made by the given patient email.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func rejectedAck(date string) models.InsertAck {
	return models.InsertAck{
		Acknowledged: false,
		Message:      fmt.Sprintf("You already have a booking on %s", date),
	}
}
