package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	LedgersCollection = "ledgers"
	StateCollection   = "state"
)

// DB wraps a connected client and the database the repositories use
type DB struct {
	client *mongo.Client
	dbName string
}

// Connect opens and verifies a MongoDB connection
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DB{client: client, dbName: dbName}, nil
}

func (db *DB) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}

// Ping verifies the server is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

// Close closes the MongoDB connection
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
