package repository

import (
	"context"
	"errors"
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const featureFlagsDocumentID = "settings"

type featureFlagsRepository struct {
	coll *mongo.Collection
}

func NewFeatureFlagsRepository(db mongodb.DBInterface, collection string) FeatureFlagsRepository {
	return &featureFlagsRepository{coll: db.Collection(collection)}
}

// Get reads the singleton toggle document, creating it with everything off
// when it does not exist yet.
func (r *featureFlagsRepository) Get(ctx context.Context) (*entity.FeatureFlags, error) {
	var flags entity.FeatureFlags
	err := r.coll.FindOne(ctx, bson.M{"_id": featureFlagsDocumentID}).Decode(&flags)
	if errors.Is(err, mongo.ErrNoDocuments) {
		now := time.Now()
		flags = entity.FeatureFlags{ID: featureFlagsDocumentID, CreatedAt: &now, LastUpdated: &now}
		if _, insertErr := r.coll.InsertOne(ctx, &flags); insertErr != nil {
			return nil, insertErr
		}
		return &flags, nil
	}
	if err != nil {
		return nil, err
	}
	return &flags, nil
}

func (r *featureFlagsRepository) Update(ctx context.Context, fields map[string]interface{}) error {
	set := bson.M{"lastUpdated": time.Now()}
	for key, value := range fields {
		set[key] = value
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": featureFlagsDocumentID}, bson.M{"$set": set}, opts)
	return err
}
