package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	contactCollection     = "contact_messages"
	appointmentCollection = "appointments"
	articleCollection     = "blog_articles"
)

// hideObjectID keeps Mongo's internal _id out of every read.
var hideObjectID = bson.D{{Key: "_id", Value: 0}}

// MongoStore is the MongoDB implementation of Store.
type MongoStore struct {
	client       *mongo.Client
	contacts     *MongoContactRepository
	appointments *MongoAppointmentRepository
	articles     *MongoArticleRepository
}

var _ Store = (*MongoStore)(nil)

// OpenMongo connects to uri and binds the repositories to database dbName.
// serverSelectionTimeout bounds how long any operation waits for a reachable server.
func OpenMongo(uri, dbName string, serverSelectionTimeout time.Duration) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	return NewMongoStore(client, dbName), nil
}

// NewMongoStore wraps an already connected client.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client:       client,
		contacts:     NewMongoContactRepository(db.Collection(contactCollection)),
		appointments: NewMongoAppointmentRepository(db.Collection(appointmentCollection)),
		articles:     NewMongoArticleRepository(db.Collection(articleCollection)),
	}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Contacts() ContactRepository         { return s.contacts }
func (s *MongoStore) Appointments() AppointmentRepository { return s.appointments }
func (s *MongoStore) Articles() ArticleRepository         { return s.articles }

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// newestFirst sorts on the given field descending and caps the result size.
func newestFirst(field string, limit int) *options.FindOptionsBuilder {
	return options.Find().
		SetProjection(hideObjectID).
		SetSort(bson.D{{Key: field, Value: -1}}).
		SetLimit(int64(limit))
}

const naiveISOLayout = "2006-01-02T15:04:05.999999999"

// decodeTime accepts both BSON dates and ISO-8601 strings, since documents
// written by other tools may store timestamps either way.
func decodeTime(rv bson.RawValue) (time.Time, error) {
	switch rv.Type {
	case bson.TypeDateTime:
		return time.UnixMilli(rv.DateTime()).UTC(), nil
	case bson.TypeString:
		t, err := time.Parse(time.RFC3339Nano, rv.StringValue())
		if err != nil {
			// Naive timestamps without an offset are taken as UTC.
			var naiveErr error
			if t, naiveErr = time.Parse(naiveISOLayout, rv.StringValue()); naiveErr != nil {
				return time.Time{}, fmt.Errorf("parse timestamp %q: %w", rv.StringValue(), err)
			}
		}
		return t.UTC(), nil
	case 0, bson.TypeNull:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %s", rv.Type)
	}
}
