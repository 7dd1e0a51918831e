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

// RatingStore abstracts rating persistence. Create works together with
// GetByUserAndProduct to give the upsert keyed on (user, product).
type RatingStore interface {
	Create(ctx context.Context, r *models.Rating) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Rating, error)
	GetByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Rating, error)
	UpdateValue(ctx context.Context, id primitive.ObjectID, value int) (*models.Rating, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	GetAll(ctx context.Context) ([]models.Rating, error)
	// GetForProduct pages a product's ratings; a limit of 0 returns them all.
	GetForProduct(ctx context.Context, productID primitive.ObjectID, page, limit int64, sort string) ([]models.Rating, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error
}

// MongoRatingStore implements RatingStore on the ratings collection.
type MongoRatingStore struct {
	Collection *mongo.Collection
}

func (s *MongoRatingStore) Create(ctx context.Context, r *models.Rating) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	res, err := s.Collection.InsertOne(ctx, r)
	if err != nil {
		return translateWriteErr(err, "user")
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoRatingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Rating, error) {
	var r models.Rating
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		return nil, translateFindErr(err)
	}
	return &r, nil
}

func (s *MongoRatingStore) GetByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Rating, error) {
	var r models.Rating
	err := s.Collection.FindOne(ctx, bson.M{"user": userID, "product": productID}).Decode(&r)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &r, nil
}

func (s *MongoRatingStore) UpdateValue(ctx context.Context, id primitive.ObjectID, value int) (*models.Rating, error) {
	var r models.Rating
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&r)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &r, nil
}

func (s *MongoRatingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoRatingStore) GetAll(ctx context.Context) ([]models.Rating, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *MongoRatingStore) GetForProduct(ctx context.Context, productID primitive.ObjectID, page, limit int64, sort string) ([]models.Rating, error) {
	return s.find(ctx, bson.M{"product": productID}, pageOpts(page, limit, parseSort(sort)))
}

func (s *MongoRatingStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}

func (s *MongoRatingStore) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"product": productID})
	return err
}

func (s *MongoRatingStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Rating, error) {
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

	ratings := []models.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
