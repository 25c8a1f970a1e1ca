package catalogRepo

import "clinicportal/models"

// CatalogRepository defines read access to the appointment option catalog.
type CatalogRepository interface {
	// GetAll retrieves every appointment option in catalog order.
	GetAll() ([]models.AppointmentOption, error)
	// GetAvailability retrieves every appointment option with its slots
	// reduced to those still open on the given date. The set difference is
	// computed store-side in a single aggregation pass.
	GetAvailability(date string) ([]models.AppointmentOption, error)
}
