package entity

import "time"

// Transaction statuses as written by the mobile app. The admin side never
// validates transitions, any string can overwrite any prior status.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusAccepted  = "accepted"
	TransactionStatusEscrow    = "escrow"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
	TransactionStatusDisputed  = "disputed"
)

type Transaction struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	Title         string     `bson:"title,omitempty" json:"title"`
	Description   string     `bson:"description,omitempty" json:"description"`
	Category      string     `bson:"category,omitempty" json:"category"`
	Amount        float64    `bson:"amount,omitempty" json:"amount"`
	Commission    float64    `bson:"commission,omitempty" json:"commission"`
	Status        string     `bson:"status,omitempty" json:"status"`
	PaymentMethod string     `bson:"paymentMethod,omitempty" json:"paymentMethod"`
	BuyerID       string     `bson:"buyerId,omitempty" json:"buyerId"`
	BuyerName     string     `bson:"buyerName,omitempty" json:"buyerName"`
	BuyerEmail    string     `bson:"buyerEmail,omitempty" json:"buyerEmail"`
	SellerID      string     `bson:"sellerId,omitempty" json:"sellerId"`
	SellerName    string     `bson:"sellerName,omitempty" json:"sellerName"`
	SellerEmail   string     `bson:"sellerEmail,omitempty" json:"sellerEmail"`
	AdminNotes    string     `bson:"adminNotes,omitempty" json:"adminNotes"`
	CreatedAt     time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt     *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	// the mobile schema calls this completionDate
	CompletedAt *time.Time `bson:"completionDate,omitempty" json:"completedAt,omitempty"`
}
