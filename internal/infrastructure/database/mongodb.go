package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBClient wraps the driver client. One instance is created per process
// and shared across requests; the driver client is safe for concurrent use.
type MongoDBClient struct {
	Client *mongo.Client
}

var (
	clientOnce sync.Once
	client     *MongoDBClient
	clientErr  error
)

// NewMongoDBClient connects to MongoDB and verifies the connection. Repeat
// calls return the same process-wide client.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			clientErr = fmt.Errorf("failed to connect to MongoDB: %w", err)
			return
		}
		if err := c.Ping(ctx, nil); err != nil {
			clientErr = fmt.Errorf("failed to ping MongoDB: %w", err)
			return
		}
		client = &MongoDBClient{Client: c}
	})
	return client, clientErr
}

// Disconnect closes the underlying connections. Call once at shutdown.
func (m *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = m.Client.Disconnect(ctx)
}
