package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type supportTicketRepository struct {
	coll *mongo.Collection
}

func NewSupportTicketRepository(db mongodb.DBInterface, collection string) SupportTicketRepository {
	return &supportTicketRepository{coll: db.Collection(collection)}
}

func (r *supportTicketRepository) List(ctx context.Context, opts ListOptions) ([]entity.SupportTicket, int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	return findPage[entity.SupportTicket](ctx, r.coll, filter, opts)
}

func (r *supportTicketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	return findByID[entity.SupportTicket](ctx, r.coll, id)
}

func (r *supportTicketRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return updateByID(ctx, r.coll, id, fields)
}
