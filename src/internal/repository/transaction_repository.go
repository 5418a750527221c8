package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type transactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db mongodb.DBInterface, collection string) TransactionRepository {
	return &transactionRepository{coll: db.Collection(collection)}
}

func (r *transactionRepository) List(ctx context.Context, opts ListOptions) ([]entity.Transaction, int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Search != "" {
		filter["title"] = bson.M{"$gte": opts.Search, "$lte": opts.Search + searchUpperBound}
	}
	return findPage[entity.Transaction](ctx, r.coll, filter, opts)
}

func (r *transactionRepository) ListAll(ctx context.Context, limit int) ([]entity.Transaction, error) {
	return findAll[entity.Transaction](ctx, r.coll, limit)
}

func (r *transactionRepository) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return findByID[entity.Transaction](ctx, r.coll, id)
}

func (r *transactionRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return updateByID(ctx, r.coll, id, fields)
}
