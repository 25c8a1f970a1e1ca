package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicportal/database"
	"clinicportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateBooking is returned by Create when the compound uniqueness
// index rejects a booking with the same (appointmentDate, email, treatment)
// as an existing one. This backstops the read-then-insert admission flow
// against concurrent identical requests.
var ErrDuplicateBooking = errors.New("booking already exists for this date, email and treatment")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.DB().Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries, plus
// the compound uniqueness constraint on the admission key.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "email", Value: 1},
			{Key: "treatment", Value: 1},
		}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// find runs an equality-filtered read and decodes all matching bookings.
func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByDate retrieves all bookings for the given appointment date.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.find(bson.M{"appointmentDate": date})
}

// GetByEmail retrieves all bookings made by the given patient email.
func (r *MongoBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	return r.find(bson.M{"email": email})
}

// GetByKey retrieves bookings matching the (date, email, treatment) triple.
func (r *MongoBookingRepo) GetByKey(date, email, treatment string) ([]models.Booking, error) {
	return r.find(bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	})
}

// Create inserts a new booking document, assigning its ID and creation time.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}
