package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when neither the config nor the URI names a database.
const DefaultDatabase = "test"

// Client defines the database operations used by the connectivity check.
type Client interface {
	// Ping verifies that a primary is reachable.
	Ping(ctx context.Context) error
	// InsertOne stores document in collection and returns its identifier.
	InsertOne(ctx context.Context, collection string, document any) (any, error)
	// DeleteByID removes the document with the given _id and reports how many were deleted.
	DeleteByID(ctx context.Context, collection string, id any) (int64, error)
	// Disconnect closes all connections held by the client.
	Disconnect(ctx context.Context) error
}

// Timeout returns the configured connection timeout, defaulting to 10 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DatabaseName resolves the database to use: the explicit Name, then the
// database in the URI path, then DefaultDatabase.
func DatabaseName(cfg Config) (string, error) {
	if cfg.Name != "" {
		return cfg.Name, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabase, nil
}

// Open creates a MongoDB client for cfg.URI.
//
// The driver connects lazily, so Open only fails for malformed URIs or
// options. Callers must Ping before issuing operations to fail fast instead of
// waiting on server selection for every command.
func Open(ctx context.Context, cfg Config) (Client, error) {
	name, err := DatabaseName(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout()
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &mongoClientWrapper{client: client, db: client.Database(name)}, nil
}

type mongoClientWrapper struct {
	client *mongo.Client
	db     *mongo.Database
}

func (c *mongoClientWrapper) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *mongoClientWrapper) InsertOne(ctx context.Context, collection string, document any) (any, error) {
	res, err := c.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (c *mongoClientWrapper) DeleteByID(ctx context.Context, collection string, id any) (int64, error) {
	res, err := c.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (c *mongoClientWrapper) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
