package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	colUsers       = "users"
	colChildren    = "children"
	colBuses       = "buses"
	colDonations   = "donations"
	colCommunities = "communities"
	colResources   = "resources"
)

// Mongo wraps the driver client and the application database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

// EnsureIndexes creates the indexes the application relies on. The
// unique email index is what turns a duplicate registration into a
// write error instead of a read-then-write race.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.DB.Collection(colUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Healthy verifies mongo connectivity.
func (m *Mongo) Healthy(ctx context.Context) bool {
	if m == nil || m.Client == nil {
		return false
	}
	return m.Client.Ping(ctx, nil) == nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// Store exposes typed operations over the application's collections.
// All array growth goes through single-document $push updates so two
// concurrent appends to the same document both persist.
type Store struct {
	db *mongo.Database
}

// NewStore creates a store over the given database handle.
func NewStore(m *Mongo) *Store {
	return &Store{db: m.DB}
}
