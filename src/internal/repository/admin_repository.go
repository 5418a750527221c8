package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type adminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db mongodb.DBInterface, collection string) AdminRepository {
	return &adminRepository{coll: db.Collection(collection)}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
