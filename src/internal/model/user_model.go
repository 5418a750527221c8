package model

import "time"

type UserResponse struct {
	ID                 string     `json:"id"`
	UID                string     `json:"uid"`
	DisplayName        string     `json:"displayName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	UserType           string     `json:"userType"`
	VerificationStatus string     `json:"verificationStatus"`
	IsBlocked          bool       `json:"isBlocked"`
	TransactionCount   int        `json:"transactionCount"`
	TotalSpent         float64    `json:"totalSpent"`
	TotalEarned        float64    `json:"totalEarned"`
	RegistrationDate   time.Time  `json:"registrationDate"`
	LastLoginDate      *time.Time `json:"lastLoginDate,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// UpdateUserRequest overwrites the editable fields directly, the way the
// dashboard form submits them. No optimistic concurrency.
type UpdateUserRequest struct {
	ID          string `json:"-" validate:"required,max=100"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
}
