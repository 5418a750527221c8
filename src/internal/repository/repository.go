package repository

import (
	"context"

	"wasset-admin/src/internal/entity"
)

// ListOptions is the single query shape every collection supports: creation
// time descending, offset pagination, one equality predicate on status and a
// prefix match on one text field.
type ListOptions struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (o ListOptions) Skip() int64 {
	return int64((o.Page - 1) * o.Limit)
}

type UserRepository interface {
	List(ctx context.Context, opts ListOptions) ([]entity.User, int64, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type TransactionRepository interface {
	List(ctx context.Context, opts ListOptions) ([]entity.Transaction, int64, error)
	ListAll(ctx context.Context, limit int) ([]entity.Transaction, error)
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type PaymentLinkRepository interface {
	List(ctx context.Context, opts ListOptions) ([]entity.PaymentLink, int64, error)
	FindByID(ctx context.Context, id string) (*entity.PaymentLink, error)
	Insert(ctx context.Context, link *entity.PaymentLink) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type SupportTicketRepository interface {
	List(ctx context.Context, opts ListOptions) ([]entity.SupportTicket, int64, error)
	FindByID(ctx context.Context, id string) (*entity.SupportTicket, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type WalletRepository interface {
	ListTransactions(ctx context.Context, opts ListOptions) ([]entity.WalletTransaction, int64, error)
	ListAllTransactions(ctx context.Context, limit int) ([]entity.WalletTransaction, error)
	ListWallets(ctx context.Context, opts ListOptions) ([]entity.Wallet, int64, error)
}

type FeatureFlagsRepository interface {
	Get(ctx context.Context) (*entity.FeatureFlags, error)
	Update(ctx context.Context, fields map[string]interface{}) error
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

type AuditRepository interface {
	Insert(ctx context.Context, log *entity.AuditLog) error
}

type ExportRepository interface {
	ListRaw(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error)
}
