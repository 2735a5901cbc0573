package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

var _ ports.AppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

func (r *AppointmentRepository) Insert(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List sorts by created_at descending, ties broken by _id.
func (r *AppointmentRepository) List(ctx context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := appointmentFilter(f)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*domain.Appointment, 0)
	for cur.Next(ctx) {
		var a domain.Appointment
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func appointmentFilter(f ports.AppointmentFilter) bson.M {
	filter := bson.M{}
	date := bson.M{}
	if f.Date != "" {
		date["$eq"] = f.Date
	}
	if f.Before != "" {
		date["$lt"] = f.Before
	}
	if len(date) > 0 {
		filter["date"] = date
	}

	status := bson.M{}
	if f.Status != "" {
		status["$eq"] = string(f.Status)
	}
	if f.ExcludeCancelled {
		status["$ne"] = string(domain.StatusCancelled)
	}
	if len(status) > 0 {
		filter["status"] = status
	}
	return filter
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a domain.Appointment
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// EnsureIndexes creates the slot and listing indexes.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
