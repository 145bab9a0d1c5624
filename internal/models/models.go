package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document in the users collection. Users are created on
// first login via upsert-by-email and never deleted.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
}

// Product is a catalog document in the products collection. Products are
// seeded externally; this service only reads them.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Brand    string             `bson:"brand" json:"brand"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	AddedOn  time.Time          `bson:"addedOn" json:"addedOn"`
}
