package bookingRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

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

// Insert writes a booking document. The unique indexes guard the write, so a
// concurrent duplicate surfaces here as ErrDuplicatePatient or ErrSlotTaken
// rather than as a second record.
func (r *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return classifyDuplicate(err)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// classifyDuplicate maps a duplicate-key error to the violated index.
func classifyDuplicate(err error) error {
	msg := err.Error()
	if strings.Contains(msg, slotIndexName) {
		return ErrSlotTaken
	}
	if strings.Contains(msg, patientIndexName) {
		return ErrDuplicatePatient
	}
	// Unknown unique index; keep the patient semantics as the safer default.
	return ErrDuplicatePatient
}

// FindByTuple retrieves the booking matching (treatment, date, patient).
// Returns nil without error when no such booking exists.
func (r *MongoBookingRepo) FindByTuple(treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// GetByID retrieves a booking by its unique ID. Returns nil without error
// when no such booking exists.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByDate retrieves all bookings for the given date.
func (r *MongoBookingRepo) ListByDate(date string) ([]models.Booking, error) {
	return r.list(bson.M{"date": date})
}

// ListByPatient retrieves all bookings made by the given patient.
func (r *MongoBookingRepo) ListByPatient(patient string) ([]models.Booking, error) {
	return r.list(bson.M{"patient": patient})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
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
