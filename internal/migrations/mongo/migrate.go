package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myroom/internal/migrations/mongo/validators"
	kvmongo "myroom/pkg/kvstore/mongo"
	"myroom/pkg/logger"
)

const visitorStateTTLIndex = "updated_at_ttl"

// VisitorStateIndexes expires a visitor's history once it has not been
// written for sessionTTL.
func VisitorStateIndexes(sessionTTL time.Duration) []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().
				SetName(visitorStateTTLIndex).
				SetExpireAfterSeconds(int32(sessionTTL.Seconds())),
		},
	}
}

func RunMigration(ctx context.Context, db *mongo.Database, sessionTTL time.Duration, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		kvmongo.CollectionName: {
			Indexes:   VisitorStateIndexes(sessionTTL),
			Validator: validators.VisitorStateValidator,
		},
	}

	for name, def := range collections {
		if err := ensureCollection(ctx, db, name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

// ensureIndexes drops a TTL index whose expiry no longer matches before
// recreating it, since MongoDB refuses to change options in place.
func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	coll := db.Collection(name)

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		if !isIndexOptionsConflict(err) {
			return err
		}
		log.Warn("Index options changed, recreating", "collection", name, "index", visitorStateTTLIndex)
		if _, err := coll.Indexes().DropOne(ctx, visitorStateTTLIndex); err != nil {
			return fmt.Errorf("failed dropping %s: %w", visitorStateTTLIndex, err)
		}
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	log.Info("Ensured indexes", "collection", name)
	return nil
}

func isIndexOptionsConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// IndexOptionsConflict, IndexKeySpecsConflict
		return cmdErr.Code == 85 || cmdErr.Code == 86
	}
	return false
}
