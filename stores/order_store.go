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

// OrderFilter selects and pages order listings. A nil User means all users;
// an empty Status means any status.
type OrderFilter struct {
	User   *primitive.ObjectID
	Status string
	Page   int64
	Limit  int64
}

// OrderStore abstracts order persistence.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Find(ctx context.Context, f OrderFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	UpdateNotes(ctx context.Context, id primitive.ObjectID, notes string) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	// ExistsForProduct reports whether any order snapshot references the
	// product. Products with orders are frozen forever.
	ExistsForProduct(ctx context.Context, productID primitive.ObjectID) (bool, error)
}

// MongoOrderStore implements OrderStore on the orders collection.
type MongoOrderStore struct {
	Collection *mongo.Collection
}

func (s *MongoOrderStore) Create(ctx context.Context, o *models.Order) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = models.StatusPending
	}
	res, err := s.Collection.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoOrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var o models.Order
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, translateFindErr(err)
	}
	return &o, nil
}

func (s *MongoOrderStore) Find(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	filter := bson.M{}
	if f.User != nil {
		filter["user"] = *f.User
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cursor, err := s.Collection.Find(ctx, filter, pageOpts(f.Page, f.Limit, parseSort("-createdAt")))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	return s.setField(ctx, id, "status", status)
}

func (s *MongoOrderStore) UpdateNotes(ctx context.Context, id primitive.ObjectID, notes string) (*models.Order, error) {
	return s.setField(ctx, id, "notes", notes)
}

func (s *MongoOrderStore) setField(ctx context.Context, id primitive.ObjectID, field string, value any) (*models.Order, error) {
	var o models.Order
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &o, nil
}

func (s *MongoOrderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoOrderStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.Collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}

func (s *MongoOrderStore) ExistsForProduct(ctx context.Context, productID primitive.ObjectID) (bool, error) {
	count, err := s.Collection.CountDocuments(ctx, bson.M{"products.product": productID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
