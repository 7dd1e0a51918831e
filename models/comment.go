package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a free-text annotation on a product.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Product   primitive.ObjectID `bson:"product" json:"product"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedComment is a comment with the commenter's username expanded.
type PopulatedComment struct {
	ID        primitive.ObjectID `json:"_id"`
	User      CommentUser        `json:"user"`
	Product   primitive.ObjectID `json:"product"`
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// CommentUser is the minimal user view embedded in comments and ratings.
type CommentUser struct {
	ID       primitive.ObjectID `json:"_id"`
	Username string             `json:"username"`
}
