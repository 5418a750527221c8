package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type paymentLinkRepository struct {
	coll *mongo.Collection
}

func NewPaymentLinkRepository(db mongodb.DBInterface, collection string) PaymentLinkRepository {
	return &paymentLinkRepository{coll: db.Collection(collection)}
}

func (r *paymentLinkRepository) List(ctx context.Context, opts ListOptions) ([]entity.PaymentLink, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter = prefixFilter("title", opts.Search)
	}
	return findPage[entity.PaymentLink](ctx, r.coll, filter, opts)
}

func (r *paymentLinkRepository) FindByID(ctx context.Context, id string) (*entity.PaymentLink, error) {
	return findByID[entity.PaymentLink](ctx, r.coll, id)
}

func (r *paymentLinkRepository) Insert(ctx context.Context, link *entity.PaymentLink) error {
	_, err := r.coll.InsertOne(ctx, link)
	return err
}

func (r *paymentLinkRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return updateByID(ctx, r.coll, id, fields)
}
