package model

import "time"

type PaymentLinkResponse struct {
	ID                    string     `json:"id"`
	SellerID              string     `json:"sellerId,omitempty"`
	SellerName            string     `json:"sellerName"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Amount                float64    `json:"amount"`
	Commission            float64    `json:"commission"`
	TotalAmount           float64    `json:"totalAmount"`
	IsActive              bool       `json:"isActive"`
	Status                string     `json:"status"`
	ClickCount            int        `json:"clickCount"`
	CompletedTransactions int        `json:"completedTransactions"`
	ShortCode             string     `json:"shortCode"`
	ExpiresAt             *time.Time `json:"expiresAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty"`
}

type CreatePaymentLinkRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
	ExpiresAt   string  `json:"expiresAt"`
}

type UpdatePaymentLinkRequest struct {
	ID          string   `json:"-" validate:"required,max=100"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	ExpiresAt   string   `json:"expiresAt"`
}
