package stores

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// DuplicateKeyError reports a unique-index violation, carrying the offending
// field so controllers can build the conflict message.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// translateWriteErr maps driver errors onto the store error taxonomy.
// Duplicate-key messages name the index, e.g. "username_1 dup key".
func translateWriteErr(err error, fields ...string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		for _, f := range fields {
			if strings.Contains(err.Error(), f+"_1") {
				return &DuplicateKeyError{Field: f}
			}
		}
		if len(fields) > 0 {
			return &DuplicateKeyError{Field: fields[0]}
		}
	}
	return err
}

// translateFindErr maps ErrNoDocuments onto ErrNotFound.
func translateFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Stores bundles every collection-backed store over one database.
type Stores struct {
	Users    *MongoUserStore
	Products *MongoProductStore
	Carts    *MongoCartStore
	Orders   *MongoOrderStore
	Comments *MongoCommentStore
	Ratings  *MongoRatingStore
	Clients  *MongoClientStore
}

// New builds the store set on the given database.
func New(db *mongo.Database) *Stores {
	return &Stores{
		Users:    &MongoUserStore{Collection: db.Collection("users")},
		Products: &MongoProductStore{Collection: db.Collection("products")},
		Carts:    &MongoCartStore{Collection: db.Collection("carts")},
		Orders:   &MongoOrderStore{Collection: db.Collection("orders")},
		Comments: &MongoCommentStore{Collection: db.Collection("comments")},
		Ratings:  &MongoRatingStore{Collection: db.Collection("ratings")},
		Clients:  &MongoClientStore{Collection: db.Collection("clients")},
	}
}
