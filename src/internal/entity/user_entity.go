package entity

import "time"

// User is the raw document in the users collection. Mobile clients and the
// seed data wrote slightly different field sets over time, so most fields
// are optional; the converter substitutes defaults on the read path.
type User struct {
	ID                 string     `bson:"_id,omitempty" json:"id"`
	UID                string     `bson:"uid,omitempty" json:"uid"`
	DisplayName        string     `bson:"displayName,omitempty" json:"displayName"`
	FullName           string     `bson:"fullName,omitempty" json:"fullName"`
	Username           string     `bson:"username,omitempty" json:"username"`
	Email              string     `bson:"email,omitempty" json:"email"`
	Phone              string     `bson:"phone,omitempty" json:"phone"`
	UserType           string     `bson:"userType,omitempty" json:"userType"`
	VerificationStatus string     `bson:"verificationStatus,omitempty" json:"verificationStatus"`
	IsBlocked          bool       `bson:"isBlocked,omitempty" json:"isBlocked"`
	TransactionCount   int        `bson:"transactionCount,omitempty" json:"transactionCount"`
	TotalSpent         float64    `bson:"totalSpent,omitempty" json:"totalSpent"`
	TotalEarned        float64    `bson:"totalEarned,omitempty" json:"totalEarned"`
	CreatedAt          time.Time  `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt          *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	LastLoginDate      *time.Time `bson:"lastLoginDate,omitempty" json:"lastLoginDate,omitempty"`
	BlockedAt          *time.Time `bson:"blockedAt,omitempty" json:"blockedAt,omitempty"`
}
