package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// MongoConfig configures the Mongo-backed slide store.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database is the database name. Defaults to "slidegrid".
	Database string

	// Collection is the collection name. Defaults to "slides".
	Collection string

	// ConnectTimeout bounds the initial connection attempt.
	// Defaults to 10 seconds.
	ConnectTimeout time.Duration
}

// MongoStore stores slides as documents in a MongoDB collection, keyed by
// the slide's own ID field. This is the production backend for the hosted
// editor; slide documents round-trip through the bson tags on the slide
// types.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a slide store.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if cfg.Database == "" {
		cfg.Database = "slidegrid"
	}
	if cfg.Collection == "" {
		cfg.Collection = "slides"
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a slide by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (slide.Slide, error) {
	var doc slide.Slide
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return slide.Slide{}, ErrNotFound
	}
	if err != nil {
		return slide.Slide{}, fmt.Errorf("find slide %s: %w", id, err)
	}
	return doc, nil
}

// Put stores a slide, upserting on its ID.
func (s *MongoStore) Put(ctx context.Context, doc slide.Slide) error {
	if doc.ID == "" {
		return ErrMissingID
	}
	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert slide %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes a slide. Missing slides are a no-op.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete slide %s: %w", id, err)
	}
	return nil
}

// List returns all stored slide IDs.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode slide id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
