package database

import (
	"context"
	"log"
	"time"

	"eduhub_backend/internal/config"
	"eduhub_backend/internal/schema"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitMongo connects to the document store, verifies the connection, and
// applies the collection validators and indexes, the same way the process
// runs its schema setup once at startup.
func InitMongo(cfg *config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	log.Println("MongoDB connection established")

	db := client.Database(cfg.Database)

	if err := schema.EnsureCollections(ctx, db); err != nil {
		return nil, nil, err
	}
	if err := schema.EnsureIndexes(ctx, db); err != nil {
		return nil, nil, err
	}

	log.Println("Collection validators and indexes ensured")

	return client, db, nil
}
