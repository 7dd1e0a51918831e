package stores

import (
	"context"
	"time"

	"shop-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentStore abstracts comment persistence.
type CommentStore interface {
	Create(ctx context.Context, c *models.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetAll(ctx context.Context) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
	// GetForProduct lists a product's comments; sort is "-createdAt" style.
	GetForProduct(ctx context.Context, productID primitive.ObjectID, sort string) ([]models.Comment, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error
}

// MongoCommentStore implements CommentStore on the comments collection.
type MongoCommentStore struct {
	Collection *mongo.Collection
}

func (s *MongoCommentStore) Create(ctx context.Context, c *models.Comment) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := s.Collection.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoCommentStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoCommentStore) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	var c models.Comment
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoCommentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCommentStore) GetAll(ctx context.Context) ([]models.Comment, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *MongoCommentStore) Count(ctx context.Context) (int64, error) {
	return s.Collection.CountDocuments(ctx, bson.M{})
}

func (s *MongoCommentStore) GetForProduct(ctx context.Context, productID primitive.ObjectID, sort string) ([]models.Comment, error) {
	return s.find(ctx, bson.M{"product": productID}, options.Find().SetSort(parseSort(sort)))
}

func (s *MongoCommentStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}

func (s *MongoCommentStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"product": productID})
	return err
}

func (s *MongoCommentStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Comment, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.Collection.Find(ctx, filter, opts)
	} else {
		cursor, err = s.Collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
