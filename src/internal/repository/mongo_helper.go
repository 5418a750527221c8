package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchUpperBound closes the prefix range, the same sentinel the mobile
// client queries with. This is a prefix match, not a substring search.
const searchUpperBound = "\uf8ff"

// prefixFilter builds the [q, q+sentinel] range on one text field.
func prefixFilter(field, q string) bson.M {
	return bson.M{field: bson.M{"$gte": q, "$lte": q + searchUpperBound}}
}

// findPage runs the standard collection query: filter, createdAt descending,
// offset pagination, plus a total count for the pagination envelope. Store
// errors are returned unchanged.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ListOptions) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(opts.Skip()).
		SetLimit(int64(opts.Limit))

	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// findAll fetches up to limit documents, creation time descending. The
// dashboard aggregation and exports scan collections through this.
func findAll[T any](ctx context.Context, coll *mongo.Collection, limit int) ([]T, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findByID decodes one document; mongo.ErrNoDocuments when absent.
func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// updateByID overwrites the given fields and stamps updatedAt. No version
// check, last write wins.
func updateByID(ctx context.Context, coll *mongo.Collection, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set[key] = value
	}

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
