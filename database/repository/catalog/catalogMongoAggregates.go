package catalogRepo

import (
	"fmt"
	"time"

	"clinicportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAvailability joins each appointment option against the bookings made for
// the given date and subtracts the booked slots, all within one aggregation
// pass. Semantically equivalent to fetching catalog and bookings separately
// and differencing in-process.
func (r *MongoCatalogRepo) GetAvailability(date string) ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "name",
			"foreignField": "treatment",
			"pipeline": mongo.Pipeline{
				{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{"$appointmentDate", date}},
				}}},
			},
			"as": "booked",
		}}},
		{{Key: "$project", Value: bson.M{
			"name":  1,
			"slots": 1,
			"booked": bson.M{"$map": bson.M{
				"input": "$booked",
				"as":    "book",
				"in":    "$$book.slot",
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"name":  1,
			"slots": bson.M{"$setDifference": bson.A{"$slots", "$booked"}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("availability aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var options []models.AppointmentOption
	if err := cursor.All(ctx, &options); err != nil {
		return nil, fmt.Errorf("error decoding availability aggregation result: %w", err)
	}
	return options, nil
}
