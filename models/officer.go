package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Officer is an account that can authenticate against the API. Password holds
// a bcrypt hash, never plaintext.
type Officer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Badge     string             `bson:"badge" json:"badge"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
