package model

import "time"

type WalletResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	Balance          float64    `json:"balance"`
	AvailableBalance float64    `json:"availableBalance"`
	HoldBalance      float64    `json:"holdBalance"`
	TotalDeposits    float64    `json:"totalDeposits"`
	TotalWithdrawals float64    `json:"totalWithdrawals"`
	Currency         string     `json:"currency"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

type WalletTransactionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	BankAccount   string    `json:"bankAccount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type WalletBalanceResponse struct {
	Balance float64 `json:"balance"`
}
