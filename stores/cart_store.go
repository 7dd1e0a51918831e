package stores

import (
	"context"
	"time"

	"shop-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore abstracts cart persistence.
type CartStore interface {
	Create(ctx context.Context, c *models.Cart) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// SetItems overwrites the cart's line items wholesale. The reconciliation
	// logic lives on models.Cart; the store only persists the result.
	SetItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error
	// ClearForUser empties the user's cart without deleting it.
	ClearForUser(ctx context.Context, userID primitive.ObjectID) error
	// RemoveProductFromAll pulls a product out of every cart that holds it.
	RemoveProductFromAll(ctx context.Context, productID primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// MongoCartStore implements CartStore on the carts collection.
type MongoCartStore struct {
	Collection *mongo.Collection
}

func (s *MongoCartStore) Create(ctx context.Context, c *models.Cart) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	res, err := s.Collection.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoCartStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	var c models.Cart
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoCartStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var c models.Cart
	if err := s.Collection.FindOne(ctx, bson.M{"user": userID}).Decode(&c); err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoCartStore) SetItems(ctx context.Context, cartID primitive.ObjectID, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	res, err := s.Collection.UpdateOne(
		ctx,
		bson.M{"_id": cartID},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCartStore) ClearForUser(ctx context.Context, userID primitive.ObjectID) error {
	res, err := s.Collection.UpdateOne(
		ctx,
		bson.M{"user": userID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCartStore) RemoveProductFromAll(ctx context.Context, productID primitive.ObjectID) error {
	_, err := s.Collection.UpdateMany(
		ctx,
		bson.M{"items.product": productID},
		bson.M{"$pull": bson.M{"items": bson.M{"product": productID}}},
	)
	return err
}

func (s *MongoCartStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
