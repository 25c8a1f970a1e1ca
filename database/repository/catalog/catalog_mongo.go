package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"clinicportal/database"
	"clinicportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.DB().Collection("appointmentOptions")
	return &MongoCatalogRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves the full catalog of appointment options.
func (r *MongoCatalogRepo) GetAll() ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var options []models.AppointmentOption
	if err := cursor.All(ctx, &options); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return options, nil
}
