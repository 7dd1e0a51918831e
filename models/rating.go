package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is an integer 1..5 score a user gives a product. At most one rating
// exists per (user, product) pair; rating again overwrites the value.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	Value     int                `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidRatingValue reports whether v is within 1..5.
func ValidRatingValue(v int) bool {
	return v >= 1 && v <= 5
}

// PopulatedRating is a rating with the rater's username expanded.
type PopulatedRating struct {
	ID        primitive.ObjectID `json:"_id"`
	User      CommentUser        `json:"user"`
	Product   primitive.ObjectID `json:"product"`
	Value     int                `json:"value"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
