package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/legaldeck/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type appointmentDocument struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Date      string    `bson:"date"`
	Time      string    `bson:"time"`
	Message   *string   `bson:"message"`
	Status    string    `bson:"status"`
	Timestamp time.Time `bson:"timestamp"`
}

// MongoAppointmentRepository stores appointment requests in the appointments collection.
type MongoAppointmentRepository struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepository creates a MongoAppointmentRepository over coll.
func NewMongoAppointmentRepository(coll *mongo.Collection) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{coll: coll}
}

var _ AppointmentRepository = (*MongoAppointmentRepository)(nil)

func (r *MongoAppointmentRepository) Save(ctx context.Context, req *model.AppointmentRequest) error {
	doc := appointmentDocument{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Message:   req.Message,
		Status:    req.Status,
		Timestamp: req.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepository) List(ctx context.Context, limit int) ([]*model.AppointmentRequest, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, newestFirst("timestamp", limit))
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	var docs []appointmentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}

	requests := make([]*model.AppointmentRequest, 0, len(docs))
	for _, d := range docs {
		requests = append(requests, &model.AppointmentRequest{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Phone:     d.Phone,
			Date:      d.Date,
			Time:      d.Time,
			Message:   d.Message,
			Status:    d.Status,
			Timestamp: d.Timestamp.UTC(),
		})
	}
	return requests, nil
}
