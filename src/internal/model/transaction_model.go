package model

import "time"

type TransactionResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Amount        float64    `json:"amount"`
	Commission    float64    `json:"commission"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	BuyerID       string     `json:"buyerId,omitempty"`
	BuyerName     string     `json:"buyerName"`
	BuyerEmail    string     `json:"buyerEmail"`
	SellerID      string     `json:"sellerId,omitempty"`
	SellerName    string     `json:"sellerName"`
	SellerEmail   string     `json:"sellerEmail"`
	AdminNotes    string     `json:"adminNotes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// UpdateTransactionRequest mutates the status field directly. There is no
// transition validation and no wallet side effect, by design of the source
// system.
type UpdateTransactionRequest struct {
	ID         string `json:"-" validate:"required,max=100"`
	Status     string `json:"status" validate:"required,max=50"`
	AdminNotes string `json:"adminNotes"`
}
