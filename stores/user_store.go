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

// UserStore abstracts user persistence.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	// UpdateProfile overwrites username and/or password hash; empty values
	// leave the field unchanged.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, username, passwordHash string) (*models.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error)
	SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoUserStore implements UserStore on the users collection.
type MongoUserStore struct {
	Collection *mongo.Collection
}

func (s *MongoUserStore) Create(ctx context.Context, u *models.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	res, err := s.Collection.InsertOne(ctx, u)
	if err != nil {
		return translateWriteErr(err, "username", "email")
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, translateFindErr(err)
	}
	return &u, nil
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, translateFindErr(err)
	}
	return &u, nil
}

func (s *MongoUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.Collection.CountDocuments(ctx, bson.M{})
}

func (s *MongoUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, username, passwordHash string) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	if username != "" {
		set["username"] = username
	}
	if passwordHash != "" {
		set["password"] = passwordHash
	}

	var u models.User
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, translateWriteErr(translateFindErr(err), "username")
	}
	return &u, nil
}

func (s *MongoUserStore) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	var u models.User
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, translateFindErr(err)
	}
	return &u, nil
}

func (s *MongoUserStore) SetCart(ctx context.Context, userID, cartID primitive.ObjectID) error {
	_, err := s.Collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"cart": cartID}})
	return err
}

func (s *MongoUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
