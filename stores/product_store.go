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

// ProductFilter selects and pages the catalog listing. Sources and
// Categories are OR'd within themselves.
type ProductFilter struct {
	Page       int64
	Limit      int64
	Sources    []string
	Categories []string
}

// ProductStore abstracts catalog persistence.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetAll(ctx context.Context, f ProductFilter) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) (*models.Product, error)
	UpdateImage(ctx context.Context, id primitive.ObjectID, image models.Image) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoProductStore implements ProductStore on the products collection.
type MongoProductStore struct {
	Collection *mongo.Collection
}

func (s *MongoProductStore) Create(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := s.Collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, translateFindErr(err)
	}
	return &p, nil
}

func (s *MongoProductStore) GetAll(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	filter := bson.M{}
	if len(f.Sources) > 0 {
		filter["source"] = bson.M{"$in": f.Sources}
	}
	if len(f.Categories) > 0 {
		filter["category"] = bson.M{"$in": f.Categories}
	}

	cursor, err := s.Collection.Find(ctx, filter, pageOpts(f.Page, f.Limit, parseSort("-createdAt")))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoProductStore) Count(ctx context.Context) (int64, error) {
	return s.Collection.CountDocuments(ctx, bson.M{})
}

func (s *MongoProductStore) Update(ctx context.Context, id primitive.ObjectID, upd models.ProductUpdate) (*models.Product, error) {
	var p models.Product
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":        upd.Name,
			"source":      upd.Source,
			"category":    upd.Category,
			"description": upd.Description,
			"price":       upd.Price,
			"updatedAt":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &p, nil
}

func (s *MongoProductStore) UpdateImage(ctx context.Context, id primitive.ObjectID, image models.Image) (*models.Product, error) {
	var p models.Product
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": image, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &p, nil
}

func (s *MongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
