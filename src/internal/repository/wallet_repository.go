package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type walletRepository struct {
	transactions *mongo.Collection
	wallets      *mongo.Collection
}

func NewWalletRepository(db mongodb.DBInterface, transactionsColl, walletsColl string) WalletRepository {
	return &walletRepository{
		transactions: db.Collection(transactionsColl),
		wallets:      db.Collection(walletsColl),
	}
}

func (r *walletRepository) ListTransactions(ctx context.Context, opts ListOptions) ([]entity.WalletTransaction, int64, error) {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	return findPage[entity.WalletTransaction](ctx, r.transactions, filter, opts)
}

func (r *walletRepository) ListAllTransactions(ctx context.Context, limit int) ([]entity.WalletTransaction, error) {
	return findAll[entity.WalletTransaction](ctx, r.transactions, limit)
}

func (r *walletRepository) ListWallets(ctx context.Context, opts ListOptions) ([]entity.Wallet, int64, error) {
	return findPage[entity.Wallet](ctx, r.wallets, bson.M{}, opts)
}
