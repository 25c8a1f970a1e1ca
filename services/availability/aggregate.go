package availability

import (
	"fmt"

	catalogRepo "clinicportal/database/repository/catalog"
	"clinicportal/models"
)

// AggregateResolver delegates the whole computation to the store's
// aggregation pipeline in a single pass.
type AggregateResolver struct {
	CatalogRepo catalogRepo.CatalogRepository
}

func (r *AggregateResolver) Resolve(date string) ([]models.AppointmentOption, error) {
	options, err := r.CatalogRepo.GetAvailability(date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability for %s: %w", date, err)
	}
	return options, nil
}
