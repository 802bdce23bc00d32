package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myroom/pkg/kvstore"
	"myroom/pkg/logger"
)

const CollectionName = "Visitor_state"

type Config struct {
	URI          string
	DatabaseName string
	ConnTimeout  time.Duration
	OpTimeout    time.Duration
}

type document struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	opTimeout  time.Duration
}

// Connect dials MongoDB and pings it before returning the store.
func Connect(log *logger.Logger, cfg Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Successfully connected to MongoDB", "database", cfg.DatabaseName)
	return NewWithClient(client, cfg.DatabaseName, cfg.OpTimeout), nil
}

func NewWithClient(client *mongo.Client, databaseName string, opTimeout time.Duration) *Store {
	return &Store{
		client:     client,
		collection: client.Database(databaseName).Collection(CollectionName),
		opTimeout:  opTimeout,
	}
}

func (s *Store) Client() *mongo.Client {
	return s.client
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < s.opTimeout {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc document
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, kvstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %q: %w", key, err)
	}
	return doc.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := document{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to store %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
