package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wavehouse/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the global MongoDB client instance. It stays nil when no DATABASE_URL is set.
var MongoClient *mongo.Client

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// InitDB initializes the MongoDB connection.
func InitDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	zap.L().Info("Connected to MongoDB successfully")
	return nil
}

// DB returns the application database.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Connected reports whether InitDB succeeded.
func Connected() bool {
	return MongoClient != nil
}

// Ping checks the database connection.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return errors.New("database not configured")
	}
	return MongoClient.Ping(ctx, nil)
}

// CloseDB disconnects the client.
func CloseDB(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
