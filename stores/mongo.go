package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// users.username, users.email, clients.name, and the (user, product)
// rating pair backing the upsert.
func (s *Stores) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.Users.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = s.Clients.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}}, Options: unique,
	})
	if err != nil {
		return fmt.Errorf("clients index: %w", err)
	}

	_, err = s.Ratings.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("ratings index: %w", err)
	}
	return nil
}

// parseSort turns a "-createdAt" style sort expression into a driver sort
// document. A leading '-' means descending.
func parseSort(sort string) bson.D {
	if sort == "" {
		sort = "-createdAt"
	}
	dir := 1
	if strings.HasPrefix(sort, "-") {
		dir = -1
		sort = sort[1:]
	}
	return bson.D{{Key: sort, Value: dir}}
}

// pageOpts builds find options for page/limit pagination with the given sort.
func pageOpts(page, limit int64, sort bson.D) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts = opts.SetSkip((page - 1) * limit).SetLimit(limit)
	}
	return opts
}
