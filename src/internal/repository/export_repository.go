package repository

import (
	"context"

	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type exportRepository struct {
	db mongodb.DBInterface
}

func NewExportRepository(db mongodb.DBInterface) ExportRepository {
	return &exportRepository{db: db}
}

// ListRaw fetches documents as-is, untyped, so exports reflect whatever
// fields each record actually carries.
func (r *exportRepository) ListRaw(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []map[string]interface{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
