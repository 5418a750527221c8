package entity

import "time"

// Wallet transaction types written by the platform.
const (
	WalletTypeDeposit       = "deposit"
	WalletTypeWithdrawal    = "withdrawal"
	WalletTypeEscrowHold    = "escrow_hold"
	WalletTypeEscrowRelease = "escrow_release"
	WalletTypeCommission    = "commission"
)

type Wallet struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	UserID           string     `bson:"userId,omitempty" json:"userId"`
	Balance          float64    `bson:"balance,omitempty" json:"balance"`
	AvailableBalance float64    `bson:"availableBalance,omitempty" json:"availableBalance"`
	HoldBalance      float64    `bson:"holdBalance,omitempty" json:"holdBalance"`
	TotalDeposits    float64    `bson:"totalDeposits,omitempty" json:"totalDeposits"`
	TotalWithdrawals float64    `bson:"totalWithdrawals,omitempty" json:"totalWithdrawals"`
	Currency         string     `bson:"currency,omitempty" json:"currency"`
	CreatedAt        time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt        *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type WalletTransaction struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	WalletID      string     `bson:"walletId,omitempty" json:"walletId"`
	UserID        string     `bson:"userId,omitempty" json:"userId"`
	Type          string     `bson:"type,omitempty" json:"type"`
	Amount        float64    `bson:"amount,omitempty" json:"amount"`
	Description   string     `bson:"description,omitempty" json:"description"`
	Status        string     `bson:"status,omitempty" json:"status"`
	TransactionID string     `bson:"transactionId,omitempty" json:"transactionId"`
	BankAccount   string     `bson:"bankAccount,omitempty" json:"bankAccount"`
	CreatedAt     time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	CompletedAt   *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
