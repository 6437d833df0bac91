// Package mongo stores entities in MongoDB collections whose document
// field names match the records the web client already knows.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aspyra/jobboard-api/internal/domain/repository"
)

const (
	usersCollection        = "users"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
	companiesCollection    = "companies"
)

// Connect opens a client for uri and verifies the primary is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(c, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []struct {
		collection string
		field      string
	}{
		{usersCollection, "Email"},
		{companiesCollection, "RegistrationNo"},
	}
	for _, u := range unique {
		_, err := db.Collection(u.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// objectID parses a hex id; anything else cannot address a document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func byID(oid primitive.ObjectID) bson.M { return bson.M{"_id": oid} }

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}

func insertedID(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

func replaceOne(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrNotFound
	}
	res, err := coll.ReplaceOne(ctx, byID(oid), doc)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return repository.ErrNotFound
	}
	res, err := coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// findAll decodes every document of coll in natural order.
func findAll[D any](ctx context.Context, coll *mongo.Collection) ([]D, error) {
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	docs := make([]D, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func findOne[D any](ctx context.Context, coll *mongo.Collection, filter any) (*D, error) {
	var d D
	if err := coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, translate(err)
	}
	return &d, nil
}
