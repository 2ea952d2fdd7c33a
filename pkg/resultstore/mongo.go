package resultstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
)

// MongoStore persists reports in a MongoDB collection, keyed by report ID.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// mongoRecord is the stored document shape. The report ID doubles as the
// document ID so lookups hit the default index.
type mongoRecord struct {
	ID       string          `bson:"_id"`
	Report   *compare.Report `bson:"report"`
	StoredAt time.Time       `bson:"stored_at"`
}

// NewMongoStore connects to MongoDB at uri and verifies the connection
// with a ping. Empty database and collection names select "vertexsim" and
// "reports".
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	if database == "" {
		database = "vertexsim"
	}
	if collection == "" {
		collection = "reports"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Put upserts a report document under its ID.
func (s *MongoStore) Put(ctx context.Context, rep *compare.Report) error {
	if rep.ID == "" {
		return fmt.Errorf("put report: empty ID")
	}
	doc := mongoRecord{ID: rep.ID, Report: rep, StoredAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": rep.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store report %s: %w", rep.ID, err)
	}
	return nil
}

// Get retrieves a stored report. mongo.ErrNoDocuments is mapped to
// ErrNotFound.
func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var doc mongoRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	return &Record{Report: doc.Report, StoredAt: doc.StoredAt}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
