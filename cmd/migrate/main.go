package main

import (
	"context"
	"time"

	mongoMigration "myroom/internal/migrations/mongo"
	"myroom/pkg/config"
	kvmongo "myroom/pkg/kvstore/mongo"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.Log.Info("Starting Mongo migration job")

	store, err := kvmongo.Connect(cfg.Log, kvmongo.Config{
		URI:          cfg.MongoURI,
		DatabaseName: cfg.MongoDatabaseName,
		ConnTimeout:  cfg.MongoConnTimeout,
	})
	if err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			cfg.Log.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	db := store.Client().Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.SessionTTL, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}
	cfg.Log.Info("Migration completed successfully")
}
