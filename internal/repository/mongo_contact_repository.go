package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/legaldeck/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type contactDocument struct {
	ID        string    `bson:"id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	Timestamp time.Time `bson:"timestamp"`
}

// MongoContactRepository stores contact messages in the contact_messages collection.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository over coll.
func NewMongoContactRepository(coll *mongo.Collection) *MongoContactRepository {
	return &MongoContactRepository{coll: coll}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	doc := contactDocument{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (r *MongoContactRepository) List(ctx context.Context, limit int) ([]*model.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, newestFirst("timestamp", limit))
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	var docs []contactDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}

	messages := make([]*model.ContactMessage, 0, len(docs))
	for _, d := range docs {
		messages = append(messages, &model.ContactMessage{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Message:   d.Message,
			Timestamp: d.Timestamp.UTC(),
		})
	}
	return messages, nil
}
