package entity

import "time"

type PaymentLink struct {
	ID          string  `bson:"_id,omitempty" json:"id"`
	SellerID    string  `bson:"sellerId,omitempty" json:"sellerId"`
	SellerName  string  `bson:"sellerName,omitempty" json:"sellerName"`
	Title       string  `bson:"title,omitempty" json:"title"`
	Description string  `bson:"description,omitempty" json:"description"`
	Amount      float64 `bson:"amount,omitempty" json:"amount"`
	Commission  float64 `bson:"commission,omitempty" json:"commission"`
	TotalAmount float64 `bson:"totalAmount,omitempty" json:"totalAmount"`
	// pointer because older documents lack the field, which reads as active
	IsActive              *bool      `bson:"isActive,omitempty" json:"isActive"`
	ClickCount            int        `bson:"clickCount,omitempty" json:"clickCount"`
	CompletedTransactions int        `bson:"completedTransactions,omitempty" json:"completedTransactions"`
	ShortCode             string     `bson:"shortCode,omitempty" json:"shortCode"`
	CreatedBy             string     `bson:"createdBy,omitempty" json:"createdBy"`
	ExpiresAt             *time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt             time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt             *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
