package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
)

type auditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db mongodb.DBInterface, collection string) AuditRepository {
	return &auditRepository{coll: db.Collection(collection)}
}

func (r *auditRepository) Insert(ctx context.Context, log *entity.AuditLog) error {
	_, err := r.coll.InsertOne(ctx, log)
	return err
}
