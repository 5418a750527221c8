package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db mongodb.DBInterface, collection string) UserRepository {
	return &userRepository{coll: db.Collection(collection)}
}

func (r *userRepository) List(ctx context.Context, opts ListOptions) ([]entity.User, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter = prefixFilter("displayName", opts.Search)
	}
	return findPage[entity.User](ctx, r.coll, filter, opts)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return findByID[entity.User](ctx, r.coll, id)
}

func (r *userRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return updateByID(ctx, r.coll, id, fields)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
