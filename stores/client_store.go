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

// ClientStore abstracts showcase-client persistence.
type ClientStore interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	GetByName(ctx context.Context, name string) (*models.Client, error)
	GetAll(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, id primitive.ObjectID, name string, image *models.Image) (*models.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoClientStore implements ClientStore on the clients collection.
type MongoClientStore struct {
	Collection *mongo.Collection
}

func (s *MongoClientStore) Create(ctx context.Context, c *models.Client) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := s.Collection.InsertOne(ctx, c)
	if err != nil {
		return translateWriteErr(err, "name")
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoClientStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var c models.Client
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoClientStore) GetByName(ctx context.Context, name string) (*models.Client, error) {
	var c models.Client
	if err := s.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		return nil, translateFindErr(err)
	}
	return &c, nil
}

func (s *MongoClientStore) GetAll(ctx context.Context) ([]models.Client, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *MongoClientStore) Update(ctx context.Context, id primitive.ObjectID, name string, image *models.Image) (*models.Client, error) {
	set := bson.M{"updatedAt": time.Now()}
	if name != "" {
		set["name"] = name
	}
	if image != nil {
		set["image"] = *image
	}

	var c models.Client
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		return nil, translateWriteErr(translateFindErr(err), "name")
	}
	return &c, nil
}

func (s *MongoClientStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
