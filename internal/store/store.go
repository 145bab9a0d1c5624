// Package store is the document store gateway. All persistence flows through
// it; the HTTP surface consumes the Store interface so handlers never touch a
// driver handle directly.
package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techzen-dev/techzen/internal/models"
)

// Store is the persistence surface consumed by the HTTP handlers.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, user models.User) (*mongo.UpdateResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	FilterProducts(ctx context.Context, filter bson.M) ([]models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
}

// Mongo implements Store against the products and users collections.
type Mongo struct {
	client   *mongo.Client
	users    *mongo.Collection
	products *mongo.Collection
	logger   zerolog.Logger
}

// Connect establishes the document store connection once at process start.
// The returned handle is reused for the process lifetime.
func Connect(ctx context.Context, uri, dbName string, zlog zerolog.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify the connection before serving traffic
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)
	m := &Mongo{
		client:   client,
		users:    db.Collection("users"),
		products: db.Collection("products"),
		logger:   zlog,
	}

	m.ensureIndexes(ctx)

	return m, nil
}

// ensureIndexes creates the unique email index on users. Index failures are
// logged, not fatal; the service still works without the index.
func (m *Mongo) ensureIndexes(ctx context.Context) {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.users.Indexes().CreateOne(ctx, indexModel); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to create unique index on users.email")
	}
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// FindUserByEmail returns the user document keyed by email, or nil when no
// document exists.
func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// UpsertUser writes the user keyed by email, inserting when absent. The
// creation timestamp is assigned here, not by the caller.
func (m *Mongo) UpsertUser(ctx context.Context, user models.User) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": upsertFields(user, time.Now())}
	result, err := m.users.UpdateOne(ctx, bson.M{"email": user.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return result, nil
}

// ListUsers returns every user document.
func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// ListProducts returns every product document in the store's natural order.
func (m *Mongo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.FilterProducts(ctx, bson.M{})
}

// FilterProducts returns the products matching the given query document.
func (m *Mongo) FilterProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := m.products.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// SearchProducts returns products whose name contains the query text,
// case-insensitively.
func (m *Mongo) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	return m.FilterProducts(ctx, searchFilter(query))
}

// searchFilter builds a case-insensitive substring match on the product name.
// The query text is quoted so regex metacharacters match literally.
func searchFilter(query string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
}

// upsertFields is the $set document for a user upsert.
func upsertFields(user models.User, now time.Time) bson.M {
	return bson.M{
		"email":     user.Email,
		"name":      user.Name,
		"photo":     user.Photo,
		"role":      user.Role,
		"timestamp": now.UnixMilli(),
	}
}
